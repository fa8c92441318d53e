package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultList(t *testing.T) {
	list, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(list) < 90 {
		t.Fatalf("expected the embedded list, got %d words", len(list))
	}
	seen := map[string]bool{}
	for _, w := range list {
		if !isAlpha(w) {
			t.Errorf("word %q is not uppercase alphabetic", w)
		}
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}
	if !seen["HANGMAN"] {
		t.Errorf("expected HANGMAN in default list")
	}
}

func TestNormalize(t *testing.T) {
	in := []string{" cat ", "Dog", "CAT", "c4t", "", "two words", "go"}
	want := []string{"CAT", "DOG", "GO"}
	if got := Normalize(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	body := "# custom list\nalpha\n\nbeta\n  gamma  \nbad-word\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"ALPHA", "BETA", "GAMMA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %v, want %v", got, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# nothing\n123\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
