package common

import "strings"

// SanitizeIdent rewrites s into a valid Go identifier: every character
// outside [A-Za-z0-9_] becomes '_', and a leading digit gets a '_' prefix.
func SanitizeIdent(s string) string {
	if s == "" {
		return "_"
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
