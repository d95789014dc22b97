package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// letterFileSchema validates one a.json..z.json file against the
// shape spec.md §6 defines for the dictionary source. Unknown fields
// are ignored by the loader regardless of what the schema permits.
const letterFileSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "properties": {
      "word": {"type": "string"},
      "meanings": {
        "type": "array",
        "items": {
          "type": "object",
          "properties": {
            "def": {"type": "string"},
            "speech_part": {"type": "string"},
            "example": {"type": "string"}
          },
          "required": ["def"]
        }
      }
    },
    "required": ["word", "meanings"]
  }
}`

var schemaCompiler = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("letter-file.json", strings.NewReader(letterFileSchema)); err != nil {
		panic(err)
	}
	s, err := c.Compile("letter-file.json")
	if err != nil {
		panic(err)
	}
	return s
}()

type rawMeaning struct {
	Def        string `json:"def"`
	SpeechPart string `json:"speech_part"`
	Example    string `json:"example"`
}

type rawEntry struct {
	Word     string       `json:"word"`
	Meanings []rawMeaning `json:"meanings"`
}

// LoadWarning records a non-fatal problem encountered while loading
// (spec.md §7 DictionaryMissing and malformed-entry handling).
type LoadWarning struct {
	Letter string
	Reason string
}

func (w LoadWarning) Error() string {
	return fmt.Sprintf("dictionary[%s]: %s", w.Letter, w.Reason)
}

// LoadDirectory loads a.json..z.json from dir (spec.md §6 Dictionary
// source) and returns the built Index plus any non-fatal warnings. A
// missing letter file is a warning, not an error; the index is built
// from whatever files are present, even zero (spec.md §7
// DictionaryMissing, §4.1 Failure).
func LoadDirectory(dir string) (*Index, []LoadWarning) {
	var entries []*Entry
	var warnings []LoadWarning

	for c := byte('a'); c <= 'z'; c++ {
		letter := string(c)
		path := filepath.Join(dir, letter+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				warnings = append(warnings, LoadWarning{Letter: letter, Reason: "file not found"})
				continue
			}
			warnings = append(warnings, LoadWarning{Letter: letter, Reason: err.Error()})
			continue
		}

		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			warnings = append(warnings, LoadWarning{Letter: letter, Reason: "invalid JSON: " + err.Error()})
			continue
		}
		if err := schemaCompiler.Validate(doc); err != nil {
			warnings = append(warnings, LoadWarning{Letter: letter, Reason: "schema mismatch: " + err.Error()})
			continue
		}

		var raw map[string]rawEntry
		if err := json.Unmarshal(data, &raw); err != nil {
			warnings = append(warnings, LoadWarning{Letter: letter, Reason: "could not decode entries: " + err.Error()})
			continue
		}

		for headword, r := range raw {
			entry, ok := validateEntry(headword, r)
			if ok {
				entries = append(entries, entry)
			}
		}
	}

	return NewIndex(entries), warnings
}

// validateEntry applies the headword filter spec.md §3/§6 describes:
// purely alphabetic, length in [MinWordLength, MaxWordLength], not
// blacklisted, and at least one meaning.
func validateEntry(headword string, r rawEntry) (*Entry, bool) {
	word := strings.ToLower(headword)
	if !isAlpha(word) {
		return nil, false
	}
	if len(word) < MinWordLength || len(word) > MaxWordLength {
		return nil, false
	}
	if blacklist[word] {
		return nil, false
	}
	if len(r.Meanings) == 0 {
		return nil, false
	}

	meanings := make([]Meaning, 0, len(r.Meanings))
	for _, m := range r.Meanings {
		if m.Def == "" {
			continue
		}
		meanings = append(meanings, Meaning{
			Definition: m.Def,
			SpeechPart: m.SpeechPart,
			Example:    m.Example,
		})
	}
	if len(meanings) == 0 {
		return nil, false
	}

	return &Entry{Word: strings.ToUpper(word), Meanings: meanings}, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
