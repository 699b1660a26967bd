package utils

import "strings"

// ContainsFold mengecek apakah s mengandung term tanpa peduli huruf besar/kecil.
// Term kosong selalu cocok.
func ContainsFold(s, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// MatchAny true kalau salah satu field mengandung term
func MatchAny(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// StringValue mengambil isi pointer string, "" kalau nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr mengembalikan nil untuk string kosong
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
