package packfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

const validFile = `{
  "packs": [
    {
      "keywords": "기본권, 인간의 존엄",
      "questions": [
        {
          "type": "multiple",
          "question": "Which article guarantees human dignity?",
          "explanation": "Article 10.",
          "choices": [
            {"text": "Article 10", "correct": true},
            {"text": "Article 21"},
            {"text": "Article 37"}
          ]
        },
        {
          "type": "truefalse",
          "question": "Constitutional amendments require a referendum.",
          "choices": [
            {"text": "True", "correct": true},
            {"text": "False"}
          ]
        },
        {
          "type": "choiceblank",
          "question": "All citizens shall be assured of human ___ and ___.",
          "blank_count": 2,
          "choices": [
            {"text": "worth", "correct": true, "blank_position": 1},
            {"text": "dignity", "correct": true, "blank_position": 2},
            {"text": "property"},
            {"text": "order"}
          ]
        }
      ]
    }
  ]
}`

func TestParseValidFile(t *testing.T) {
	f, err := Parse([]byte(validFile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(f.Packs) != 1 {
		t.Fatalf("packs = %d, want 1", len(f.Packs))
	}
	pack := f.Packs[0]
	if len(pack.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(pack.Questions))
	}
	if pack.Questions[2].Type != "choiceblank" {
		t.Errorf("q3 type = %q, want choiceblank", pack.Questions[2].Type)
	}
	if pack.Questions[2].BlankCount != 2 {
		t.Errorf("q3 blank count = %d, want 2", pack.Questions[2].BlankCount)
	}
	bp := pack.Questions[2].Choices[1].BlankPosition
	if bp == nil || *bp != 2 {
		t.Errorf("q3 choice 2 blank position = %v, want 2", bp)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no packs", `{"packs": []}`},
		{"unknown type", `{"packs":[{"keywords":"k","questions":[
			{"type":"essay","question":"q","choices":[{"text":"a"},{"text":"b"}]}]}]}`},
		{"empty question text", `{"packs":[{"keywords":"k","questions":[
			{"type":"multiple","question":"","choices":[{"text":"a","correct":true},{"text":"b"}]}]}]}`},
		{"single choice", `{"packs":[{"keywords":"k","questions":[
			{"type":"multiple","question":"q","choices":[{"text":"a","correct":true}]}]}]}`},
		{"blank count too high", `{"packs":[{"keywords":"k","questions":[
			{"type":"choiceblank","question":"q","blank_count":4,"choices":[
			{"text":"a","correct":true,"blank_position":1},{"text":"b"}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseCrossFieldRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"no correct choice",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"multiple","question":"q","choices":[{"text":"a"},{"text":"b"}]}]}]}`,
			"no correct choice",
		},
		{
			"truefalse with three choices",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"truefalse","question":"q","choices":[
				{"text":"a","correct":true},{"text":"b"},{"text":"c"}]}]}]}`,
			"exactly 2 choices",
		},
		{
			"truefalse with two correct",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"truefalse","question":"q","choices":[
				{"text":"a","correct":true},{"text":"b","correct":true}]}]}]}`,
			"exactly 1 correct",
		},
		{
			"choiceblank without blank count",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"choiceblank","question":"q","choices":[
				{"text":"a","correct":true,"blank_position":1},{"text":"b"}]}]}]}`,
			"blank_count",
		},
		{
			"choiceblank missing positioned choice",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"choiceblank","question":"q","blank_count":2,"choices":[
				{"text":"a","correct":true,"blank_position":1},{"text":"b"}]}]}]}`,
			"positioned correct choices",
		},
		{
			"blank position past blank count",
			`{"packs":[{"keywords":"k","questions":[
				{"type":"choiceblank","question":"q","blank_count":1,"choices":[
				{"text":"a","correct":true,"blank_position":2},{"text":"b"}]}]}]}`,
			"exceeds blank_count",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packs.json")
	if err := os.WriteFile(path, []byte(validFile), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(f.Packs) != 1 {
		t.Errorf("packs = %d, want 1", len(f.Packs))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImportWritesBankAndCatalog(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:packfile_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	f, err := Parse([]byte(validFile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ids, err := Import(ctx, s.SeedRepo(), f)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("ids = %v, want one pack", ids)
	}

	questions, err := s.BankRepo().Questions(ctx, ids[0])
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(questions))
	}
	if questions[0].Explanation != "Article 10." {
		t.Errorf("q1 explanation = %q", questions[0].Explanation)
	}
	blank := questions[2]
	if blank.BlankCount != 2 {
		t.Errorf("q3 blank count = %d, want 2", blank.BlankCount)
	}
	if len(blank.Choices) != 4 {
		t.Fatalf("q3 choices = %d, want 4", len(blank.Choices))
	}
	if blank.Choices[0].BlankPosition == nil || *blank.Choices[0].BlankPosition != 1 {
		t.Errorf("q3 choice 1 blank position = %v, want 1", blank.Choices[0].BlankPosition)
	}

	entry, err := s.CatalogRepo().Entry(ctx, ids[0])
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if entry == nil || entry.CatalogOrder != 1 {
		t.Fatalf("entry = %+v, want catalog order 1", entry)
	}
}
