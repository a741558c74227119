package domain

import (
	"fmt"
	"strings"
)

// NormalizeSymbol upper-cases a ticker symbol and validates its shape.
// Symbols are uppercase alphanumerics, optionally with a dot for class
// shares (e.g. BRK.B).
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", fmt.Errorf("ticker symbol is empty")
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.':
		default:
			return "", fmt.Errorf("ticker symbol %q contains invalid character %q", symbol, r)
		}
	}
	return s, nil
}
