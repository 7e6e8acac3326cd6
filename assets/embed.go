// Package assets embeds the default word lists.
//
// Each non-comment line is one encoded word (see words.Decode); the files
// are never read as plain text.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AnswersList returns the encoded daily answers in play order.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the encoded extra guesses.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
