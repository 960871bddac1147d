package deeplink

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure. Each kind maps to exactly one
// localized message.
type Kind string

// Validation failure kinds.
const (
	CoinMissing             Kind = "CoinMissing"
	CoinMismatch            Kind = "CoinMismatch"
	CoinNotSupported        Kind = "CoinNotSupported"
	MethodMissing           Kind = "MethodMissing"
	MethodNotSupported      Kind = "MethodNotSupported"
	NetworkOrNethashMissing Kind = "NetworkOrNethashMissing"
	NetworkMismatch         Kind = "NetworkMismatch"
	NetworkInvalid          Kind = "NetworkInvalid"
	NetworkNotEnabled       Kind = "NetworkNotEnabled"
	NetworkNoWallets        Kind = "NetworkNoWallets"
	NethashNotEnabled       Kind = "NethashNotEnabled"
	NethashNoWallets        Kind = "NethashNoWallets"
	MessageMissing          Kind = "MessageMissing"
	DelegateOrPublicKey     Kind = "DelegateOrPublicKey"
	DelegateMissing         Kind = "DelegateMissing"
	DelegateNotFound        Kind = "DelegateNotFound"
	DelegateResigned        Kind = "DelegateResigned"
)

// Kinds lists every validation failure kind.
var Kinds = []Kind{
	CoinMissing, CoinMismatch, CoinNotSupported,
	MethodMissing, MethodNotSupported,
	NetworkOrNethashMissing, NetworkMismatch, NetworkInvalid, NetworkNotEnabled, NetworkNoWallets,
	NethashNotEnabled, NethashNoWallets,
	MessageMissing,
	DelegateOrPublicKey, DelegateMissing, DelegateNotFound, DelegateResigned,
}

// displayLength is the longest identifier shown to the user before eliding.
const displayLength = 24

// ValidationError is the single failure returned for a rejected request.
// Value holds the offending input untrimmed; use Display for rendering.
type ValidationError struct {
	Kind  Kind
	Value string
}

func newError(kind Kind, value string) *ValidationError {
	return &ValidationError{Kind: kind, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("deeplink: %s", e.Kind)
	}
	return fmt.Sprintf("deeplink: %s (%s)", e.Kind, e.Display())
}

// Display returns Value elided for display.
func (e *ValidationError) Display() string {
	return TruncateMiddle(e.Value, displayLength)
}

// Is matches another *ValidationError of the same kind. A target with a
// non-empty Value must also match the value exactly.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Value == "" || t.Value == e.Value)
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Kind == kind
}

// TruncateMiddle elides the middle of s so that the result has at most limit
// runes.
func TruncateMiddle(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit || limit < 3 {
		return s
	}
	head := (limit - 1) / 2
	tail := limit - 1 - head
	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}
