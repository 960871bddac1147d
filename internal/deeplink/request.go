package deeplink

import (
	"fmt"
	"net/url"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// Recognized request keys. Anything else is ignored.
const (
	KeyCoin      = "coin"
	KeyMethod    = "method"
	KeyNetwork   = "network"
	KeyNethash   = "nethash"
	KeyRecipient = "recipient"
	KeyAmount    = "amount"
	KeyMemo      = "memo"
	KeyMessage   = "message"
	KeySignatory = "signatory"
	KeySignature = "signature"
	KeyAddress   = "address"
	KeyDelegate  = "delegate"
	KeyPublicKey = "publicKey"
	KeyVote      = "vote"
)

var extraKeys = []string{
	KeyRecipient, KeyAmount, KeyMemo, KeyMessage, KeySignatory,
	KeySignature, KeyAddress, KeyDelegate, KeyPublicKey, KeyVote,
}

// RawRequest is the untrusted key/value set of a deep link. Duplicate keys
// keep the last value.
type RawRequest struct {
	values map[string]string
}

// NewRawRequest builds a request from a plain map. The map is copied.
func NewRawRequest(values map[string]string) RawRequest {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return RawRequest{values: copied}
}

// FromValues builds a request from parsed query values.
func FromValues(values url.Values) RawRequest {
	flat := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			flat[k] = vs[len(vs)-1]
		}
	}
	return RawRequest{values: flat}
}

// ParseQuery parses a URL query string such as "coin=ARK&method=transfer".
func ParseQuery(query string) (RawRequest, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return RawRequest{}, fmt.Errorf("parse query: %w", err)
	}
	return FromValues(values), nil
}

// FromURL parses the query of a deep link URL.
func FromURL(raw string) (RawRequest, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return RawRequest{}, fmt.Errorf("parse url: %w", err)
	}
	return ParseQuery(u.RawQuery)
}

// Get returns the value of key. Empty values count as absent.
func (r RawRequest) Get(key string) (string, bool) {
	v := r.values[key]
	return v, v != ""
}

// Has reports whether key carries a non-empty value.
func (r RawRequest) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// RequiredParameters pins a request to an already established context.
// Each field is checked independently when non-nil.
type RequiredParameters struct {
	Coin    *string
	Network *string
	Nethash *string
}

// ResolvedRequest is an approved deep link. Exactly one of Network and
// Nethash is set, depending on how the request located its network.
type ResolvedRequest struct {
	Coin        string
	Method      models.Method
	Network     *models.NetworkDescriptor
	Nethash     string
	ExtraFields map[string]string
	// Delegate is set for vote requests.
	Delegate *models.Delegate

	target models.NetworkDescriptor
}

// Target returns the network the request resolved to.
func (r *ResolvedRequest) Target() models.NetworkDescriptor {
	return r.target
}

// Field returns a recognized extra field.
func (r *ResolvedRequest) Field(key string) (string, bool) {
	v, ok := r.ExtraFields[key]
	return v, ok
}
