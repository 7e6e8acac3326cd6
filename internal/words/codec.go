package words

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encode turns a word into its stored form: the lowercase word as
// ISO-8859-1 bytes, base64 encoded. Å, Ä and Ö each fit in one byte.
func Encode(word string) (string, error) {
	b, err := charmap.ISO8859_1.NewEncoder().String(strings.ToLower(word))
	if err != nil {
		return "", fmt.Errorf("encode %q: %w", word, err)
	}
	return base64.StdEncoding.EncodeToString([]byte(b)), nil
}

// Decode reverses Encode. The result is UTF-8 and still lowercase.
func Decode(enc string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(enc))
	if err != nil {
		return "", fmt.Errorf("decode %q: %w", enc, err)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %q: %w", enc, err)
	}
	return string(s), nil
}
