package strutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Check if the string is blank
func IsBlankStr(s string) bool {
	return s == "" || strings.TrimSpace(s) == ""
}

func ToStr(v any) string {
	return fmt.Sprintf("%v", v)
}

// Pad numeric value to at least the given number of digits, e.g., PadNum(5, 3) returns "005".
func PadNum(n int, digit int) string {
	var cnt int
	var v int = n
	for v > 0 {
		cnt += 1
		v /= 10
	}
	pad := digit - cnt
	num := strconv.Itoa(n)
	if pad > 0 {
		if pad == digit {
			return strings.Repeat("0", pad)
		}
		return strings.Repeat("0", pad) + num
	}
	return num
}

// Surround string with double quotes.
func QuoteStr(s string) string {
	return "\"" + s + "\""
}

// Remove surrounding double quotes if any.
func UnquoteStr(s string) string {
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Check if s has the prefix in a case-insensitive way.
func HasPrefixIgnoreCase(s string, prefix string) bool {
	prefix = strings.ToLower(prefix)
	ls := strings.ToLower(s)
	return strings.HasPrefix(ls, prefix)
}

// Check if s has the suffix in a case-insensitive way.
func HasSuffixIgnoreCase(s string, suffix string) bool {
	suffix = strings.ToLower(suffix)
	ls := strings.ToLower(s)
	return strings.HasSuffix(ls, suffix)
}
