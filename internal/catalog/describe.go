package catalog

import "strings"

// Describe returns the record's description with a leading "It " or "Its "
// replaced by the character's name.
func Describe(r *Record) string {
	if r == nil || r.Description == "" {
		return ""
	}
	d := r.Description
	if r.Name == "" {
		return d
	}
	switch {
	case hasPrefixFold(d, "Its "):
		return r.Name + "'s " + d[4:]
	case hasPrefixFold(d, "It "):
		return r.Name + " " + d[3:]
	}
	return d
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
