package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want Word
	}{
		{"crane", "CRANE"},
		{"  Focus\n", "FOCUS"},
		{"SPEED", "SPEED"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWordValid(t *testing.T) {
	cases := []struct {
		w  Word
		n  int
		ok bool
	}{
		{"CRANE", 5, true},
		{"CRAN", 5, false},
		{"CRANES", 5, false},
		{"CR4NE", 5, false},
		{"crane", 5, false},
		{"ÉCRAN", 5, false},
		{"CAT", 3, true},
	}
	for _, tc := range cases {
		if got := tc.w.Valid(tc.n); got != tc.ok {
			t.Errorf("%q.Valid(%d) = %v, want %v", tc.w, tc.n, got, tc.ok)
		}
	}
}

func TestWordLetters(t *testing.T) {
	got := Word("ABC").Letters()
	if len(got) != 3 || got[0] != 'A' || got[2] != 'C' {
		t.Fatalf("Letters() = %v", got)
	}
	if got[1].String() != "B" {
		t.Errorf("Letter.String() = %q", got[1].String())
	}
}

func TestParse(t *testing.T) {
	in := "# comment\ncrane\n\n  slate \nfoo\ncrane\nab3de\nFOCUS\ntoolong\n"
	got, err := Parse(strings.NewReader(in), 5)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Word{"CRANE", "SLATE", "FOCUS"}
	if len(got) != len(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Parse[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewDictionaryIncludesAnswersInAllowed(t *testing.T) {
	d := NewDictionary(5, []Word{"CRANE", "BAD"}, []Word{"SLATE"})
	if !d.Contains("CRANE") || !d.Contains("SLATE") {
		t.Fatal("expected answers and allowed words to be accepted")
	}
	if d.Contains("BAD") {
		t.Error("wrong-length answer should have been dropped")
	}
	if a, g := d.Stats(); a != 1 || g != 2 {
		t.Errorf("Stats() = (%d, %d), want (1, 2)", a, g)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	d, err := Load(LoadOptions{Length: 5})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Answers()) == 0 {
		t.Fatal("embedded answers are empty")
	}
	for _, w := range d.Answers() {
		if !w.Valid(5) {
			t.Errorf("embedded answer %q is not a valid 5-letter word", w)
		}
		if !d.Contains(w) {
			t.Errorf("answer %q is not accepted as a guess", w)
		}
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	if err := os.WriteFile(answers, []byte("focus\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(allowed, []byte("slate\ncrane\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(LoadOptions{Length: 5, AnswersFile: answers, AllowedFile: allowed})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Answers(); len(got) != 1 || got[0] != "FOCUS" {
		t.Errorf("Answers() = %v", got)
	}
	if !d.Contains("SLATE") || !d.Contains("FOCUS") {
		t.Error("expected both lists to be accepted")
	}

	// Allowed-only: the same list serves as answers.
	d, err = Load(LoadOptions{Length: 5, AllowedFile: allowed})
	if err != nil {
		t.Fatalf("Load allowed-only: %v", err)
	}
	if len(d.Answers()) != 2 {
		t.Errorf("allowed-only Answers() = %v", d.Answers())
	}
}

func TestLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(p, []byte("# nothing\nabc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(LoadOptions{Length: 5, AllowedFile: p}); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Load = %v, want ErrEmptyList", err)
	}
	if _, err := Load(LoadOptions{Length: 5, AllowedFile: filepath.Join(dir, "missing.txt")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRandomPicker(t *testing.T) {
	list := []Word{"CRANE", "SLATE"}
	seen := map[Word]bool{}
	for i := 0; i < 50; i++ {
		w, err := RandomPicker{}.Pick(list)
		if err != nil {
			t.Fatalf("Pick: %v", err)
		}
		if w != "CRANE" && w != "SLATE" {
			t.Fatalf("unexpected word %q", w)
		}
		seen[w] = true
	}
	if len(seen) != 2 {
		t.Logf("only saw %v in 50 draws", seen)
	}
	if _, err := (RandomPicker{}).Pick(nil); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Pick(nil) = %v, want ErrNoCandidates", err)
	}
}

func TestFixed(t *testing.T) {
	p := Fixed("FOCUS")
	w, err := p.Pick([]Word{"CRANE"})
	if err != nil || w != "FOCUS" {
		t.Fatalf("Fixed.Pick = %q, %v", w, err)
	}
	if _, err := p.Pick(nil); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Fixed.Pick(nil) = %v, want ErrNoCandidates", err)
	}
}
