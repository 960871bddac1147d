// Package text normalizes secret material before it is used for signing.
package text

import "golang.org/x/text/unicode/norm"

// NFD returns s in Unicode Normalization Form D, so that visually identical
// inputs with different compositions map to the same bytes.
func NFD(s string) string {
	return norm.NFD.String(s)
}

// IsNFD reports whether s is already in Normalization Form D.
func IsNFD(s string) bool {
	return norm.NFD.IsNormalString(s)
}
