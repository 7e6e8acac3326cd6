package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	for _, w := range []string{"åskan", "ÄRTSÖ", "gissa", "kväll"} {
		enc, err := Encode(w)
		if err != nil {
			t.Fatalf("encode %q: %v", w, err)
		}
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if got != strings.ToLower(w) {
			t.Fatalf("expected %q, got %q", strings.ToLower(w), got)
		}
	}
	// Matches the browser's btoa of the Latin-1 string.
	if enc, _ := Encode("åskan"); enc != "5XNrYW4=" {
		t.Fatalf("expected 5XNrYW4=, got %s", enc)
	}
	if _, err := Encode("日本"); err == nil {
		t.Fatal("expected error for runes outside ISO-8859-1")
	}
	if _, err := Decode("not base64!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestListContains(t *testing.T) {
	l := NewList([]string{"KATEN", "åskan", "bad1"}, []string{"tlaen", "x y z"})
	if l.Len() != 2 || l.At(1) != "ÅSKAN" {
		t.Fatalf("expected 2 ordered answers, got %v", l.Words())
	}
	for _, w := range []string{"katen", "KATEN", "ÅSKAN", "åSkAn", "tlaen"} {
		if !l.Contains(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
	for _, w := range []string{"", "kate", "bad1", "skölp"} {
		if l.Contains(w) {
			t.Errorf("expected %q to be rejected", w)
		}
	}
	words := l.Words()
	words[0] = "CHANGED"
	if l.Words()[0] != "KATEN" {
		t.Fatal("Words must return a copy")
	}
	if a, g := l.Stats(); a != 2 || g != 3 {
		t.Fatalf("expected stats (2, 3), got (%d, %d)", a, g)
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("", "", false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Len() == 0 {
		t.Fatal("expected embedded answers")
	}
	if got := l.Words()[0]; got != "GISSA" {
		t.Fatalf("expected GISSA first, got %s", got)
	}
	if !l.Contains("åskan") || !l.Contains("skäll") {
		t.Fatal("expected embedded answers and extra guesses to be accepted")
	}
	for _, w := range l.Words() {
		if len([]rune(w)) != 5 {
			t.Fatalf("expected five-letter answers, got %q", w)
		}
	}
}

func writeLines(t *testing.T, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadFiles(t *testing.T) {
	encoded, _ := Encode("fjäll")
	answers := writeLines(t, "answers.txt", "# comment", "", encoded)
	allowed := writeLines(t, "allowed.txt", "fjäll", "kväll")

	l, err := Load(answers, "", false)
	if err != nil {
		t.Fatalf("load encoded: %v", err)
	}
	if l.Words()[0] != "FJÄLL" {
		t.Fatalf("expected FJÄLL, got %v", l.Words())
	}

	l, err = Load("", allowed, true)
	if err != nil {
		t.Fatalf("load plain: %v", err)
	}
	if l.Len() != 2 || !l.Contains("kväll") {
		t.Fatalf("expected allowed file used for both lists, got %v", l.Words())
	}

	if _, err := Load(allowed, allowed, false); err == nil {
		t.Fatal("expected decode error for plain words read as encoded")
	}
	if _, err := Load(writeLines(t, "empty.txt", "# nothing"), "", true); err == nil {
		t.Fatal("expected error for empty answers")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "", true); err == nil {
		t.Fatal("expected error for missing file")
	}
}
