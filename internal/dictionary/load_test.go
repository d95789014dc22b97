package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLetterFile(t *testing.T, dir, letter, content string) {
	t.Helper()
	path := filepath.Join(dir, letter+".json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDirectory_ValidEntries(t *testing.T) {
	dir := t.TempDir()
	writeLetterFile(t, dir, "c", `{
		"cat": {"word": "cat", "meanings": [{"def": "a small feline kept as a pet", "speech_part": "noun"}]}
	}`)

	idx, warnings := LoadDirectory(dir)
	for _, w := range warnings {
		if w.Letter == "c" {
			t.Fatalf("unexpected warning for c.json: %v", w)
		}
	}
	if idx.Size() != 1 {
		t.Fatalf("idx.Size() = %d, want 1", idx.Size())
	}
	if _, ok := idx.Lookup("cat"); !ok {
		t.Fatal("Lookup(cat) = not found, want found")
	}
}

func TestLoadDirectory_MissingFileIsWarningNotError(t *testing.T) {
	dir := t.TempDir()
	idx, warnings := LoadDirectory(dir)
	if idx.Size() != 0 {
		t.Fatalf("idx.Size() = %d, want 0 for an empty directory", idx.Size())
	}
	if len(warnings) != 26 {
		t.Fatalf("len(warnings) = %d, want 26 (one per missing letter file)", len(warnings))
	}
}

func TestLoadDirectory_InvalidJSONIsWarning(t *testing.T) {
	dir := t.TempDir()
	writeLetterFile(t, dir, "c", `not json`)

	idx, warnings := LoadDirectory(dir)
	if idx.Size() != 0 {
		t.Fatalf("idx.Size() = %d, want 0", idx.Size())
	}
	found := false
	for _, w := range warnings {
		if w.Letter == "c" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a warning for c.json's invalid JSON")
	}
}

func TestValidateEntry_RejectsTooShortOrBlacklisted(t *testing.T) {
	if _, ok := validateEntry("at", rawEntry{Word: "at", Meanings: []rawMeaning{{Def: "x"}}}); ok {
		t.Fatal("validateEntry(at) = ok, want rejected (too short)")
	}
	if _, ok := validateEntry("the", rawEntry{Word: "the", Meanings: []rawMeaning{{Def: "x"}}}); ok {
		t.Fatal("validateEntry(the) = ok, want rejected (blacklisted)")
	}
	if _, ok := validateEntry("cat123", rawEntry{Word: "cat123", Meanings: []rawMeaning{{Def: "x"}}}); ok {
		t.Fatal("validateEntry(cat123) = ok, want rejected (non-alpha)")
	}
}
