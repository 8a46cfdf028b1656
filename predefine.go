package cpre

import "strings"

// ParseDefine splits a "NAME=VALUE" command-line predefine into its name and
// value, defaulting VALUE to "1" when no "=" is present.
func ParseDefine(s string) (name, value string) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, "1"
}
