// Package json wraps the json-iterator codec used across the library.
package json

import (
	"github.com/curtisnewbie/chronon/util/strutil"
	jsoniter "github.com/json-iterator/go"
)

var (
	config = jsoniter.Config{EscapeHTML: true}.Froze()
)

// Parse json bytes.
func ParseJson(body []byte, ptr any) error {
	e := config.Unmarshal(body, ptr)
	return e
}

// Parse json bytes.
func ParseJsonAs[T any](body []byte) (T, error) {
	var t T
	return t, ParseJson(body, &t)
}

// Parse json string.
func SParseJson(body string, ptr any) error {
	return ParseJson(strutil.UnsafeStr2Byt(body), ptr)
}

// Parse json string.
func SParseJsonAs[T any](body string) (T, error) {
	var t T
	return t, SParseJson(body, &t)
}

// Write json as bytes.
func WriteJson(body any) ([]byte, error) {
	return config.Marshal(body)
}

// Write json as string.
func SWriteJson(body any) (string, error) {
	if v, ok := body.(string); ok {
		return v, nil
	}
	buf, err := WriteJson(body)
	if err != nil {
		return "", err
	}
	return strutil.UnsafeByt2Str(buf), nil
}

// Write json as indented bytes.
func WriteJsonIndent(body any) ([]byte, error) {
	return config.MarshalIndent(body, "", "  ")
}
