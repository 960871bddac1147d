package deeplink

import (
	"net/url"
	"strings"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// MethodSpec describes what a method requires and where it navigates.
type MethodSpec struct {
	Name models.Method
	// Route is the profile-relative page that handles the method.
	Route string
	// Fields are echoed into the navigation path, in order, when present.
	Fields []string
}

// DefaultMethods are the methods a wallet registers out of the box.
var DefaultMethods = []MethodSpec{
	{
		Name:   models.MethodTransfer,
		Route:  "send-transfer",
		Fields: []string{KeyRecipient, KeyAmount, KeyMemo},
	},
	{
		Name:   models.MethodVote,
		Route:  "send-vote",
		Fields: []string{KeyDelegate, KeyPublicKey},
	},
	{
		Name:   models.MethodSign,
		Route:  "sign-message",
		Fields: []string{KeyMessage, KeyAddress},
	},
}

// NavigationContext carries what the surrounding UI knows about the page
// being navigated from.
type NavigationContext struct {
	ProfileID string
}

// MethodResolver maps method names to their specs and builds navigation paths.
type MethodResolver struct {
	methods map[models.Method]MethodSpec
}

// NewMethodResolver registers specs. With no specs, DefaultMethods are used.
func NewMethodResolver(specs ...MethodSpec) *MethodResolver {
	if len(specs) == 0 {
		specs = DefaultMethods
	}
	methods := make(map[models.Method]MethodSpec, len(specs))
	for _, spec := range specs {
		methods[spec.Name] = spec
	}
	return &MethodResolver{methods: methods}
}

// Lookup returns the spec registered under name. Names are case-sensitive.
func (m *MethodResolver) Lookup(name string) (MethodSpec, bool) {
	spec, ok := m.methods[models.Method(name)]
	return spec, ok
}

// PathFor builds the navigation path for a resolved request:
//
//	/profiles/{profileId}/{route}?coin=...&method=...&nethash=...&{fields}
//
// coin and method keep the request's casing. The nethash is always the
// canonical nethash of the resolved network, even when the request named a
// network id.
func (m *MethodResolver) PathFor(req *ResolvedRequest, nav NavigationContext) string {
	spec, ok := m.methods[req.Method]
	if !ok {
		spec = MethodSpec{Name: req.Method, Route: string(req.Method)}
	}

	var b strings.Builder
	b.WriteString("/profiles/")
	b.WriteString(url.PathEscape(nav.ProfileID))
	b.WriteString("/")
	b.WriteString(spec.Route)

	query := [][2]string{
		{KeyCoin, req.Coin},
		{KeyMethod, string(req.Method)},
		{KeyNethash, req.Target().Nethash},
	}
	for _, field := range spec.Fields {
		if v, ok := req.Field(field); ok {
			query = append(query, [2]string{field, v})
		}
	}
	for i, kv := range query {
		if i == 0 {
			b.WriteString("?")
		} else {
			b.WriteString("&")
		}
		b.WriteString(kv[0])
		b.WriteString("=")
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}
