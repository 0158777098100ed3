// Package opname holds the reconciliation core for physical stock counts:
// code canonicalization, variance math, batch assembly and the abstract
// report document. Everything here is pure; storage and rendering live in
// infrastructure.
package opname

import (
	"strings"

	"github.com/amalindouser/stok-opname/internal/domain"
)

// NormalizeCode canonicalizes a scanned or typed item code. Some catalog
// sources store numeric codes as float-like text, so "22100001" and
// "22100001.0" are the same logical code; the canonical form is the input
// with a single trailing ".0" removed. An empty or whitespace-only input is
// a validation failure, not a not-found condition.
func NormalizeCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", domain.ErrEmptyCode
	}
	return StripSuffix(code), nil
}

// StripSuffix removes one trailing literal ".0" if present. It does not
// trim or validate; use NormalizeCode for user input.
func StripSuffix(code string) string {
	return strings.TrimSuffix(code, ".0")
}

// CodeAlternates returns the key forms a catalog lookup must accept for a
// canonical code: the code as-is and the float-like variant with a ".0"
// suffix. Sources that stored codes either way both match.
func CodeAlternates(code string) (string, string) {
	return code, code + ".0"
}
