// Package packfile loads quizpack definitions from JSON files, validates
// them against a schema, and hands them to the store for import.
package packfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// File is a parsed pack file.
type File struct {
	Packs []Pack `json:"packs"`
}

// Pack is one quizpack definition.
type Pack struct {
	Keywords  string     `json:"keywords"`
	Questions []Question `json:"questions"`
}

// Question is one question definition.
type Question struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Passage     string   `json:"passage,omitempty"`
	Hint        string   `json:"hint,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	BlankCount  int      `json:"blank_count,omitempty"`
	Choices     []Choice `json:"choices"`
}

// Choice is one answer option definition.
type Choice struct {
	Text          string `json:"text"`
	Correct       bool   `json:"correct,omitempty"`
	BlankPosition *int   `json:"blank_position,omitempty"`
}

// Parse validates raw pack-file JSON and decodes it.
func Parse(raw []byte) (*File, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pack file validation failed: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode pack file: %w", err)
	}

	for pi, p := range f.Packs {
		for qi, q := range p.Questions {
			if err := checkQuestion(q); err != nil {
				return nil, fmt.Errorf("pack %d question %d: %w", pi+1, qi+1, err)
			}
		}
	}
	return &f, nil
}

// LoadFile reads and parses a pack file from disk.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack file: %w", err)
	}
	return Parse(raw)
}

// Import inserts every pack in the file through the seed repository and
// returns the new pack ids in file order.
func Import(ctx context.Context, repo store.SeedRepo, f *File) ([]int, error) {
	ids := make([]int, 0, len(f.Packs))
	for i, p := range f.Packs {
		seed := store.SeedPack{Keywords: p.Keywords}
		for _, q := range p.Questions {
			sq := store.SeedQuestion{
				Type:        q.Type,
				Text:        q.Question,
				Passage:     q.Passage,
				Hint:        q.Hint,
				Explanation: q.Explanation,
				BlankCount:  q.BlankCount,
			}
			for _, c := range q.Choices {
				sq.Choices = append(sq.Choices, store.SeedChoice{
					Text:          c.Text,
					Correct:       c.Correct,
					BlankPosition: c.BlankPosition,
				})
			}
			seed.Questions = append(seed.Questions, sq)
		}

		id, err := repo.ImportPack(ctx, seed)
		if err != nil {
			return ids, fmt.Errorf("import pack %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// checkQuestion enforces the cross-field rules the JSON schema can't
// express: answerable questions and consistent blank layouts.
func checkQuestion(q Question) error {
	correct := 0
	for _, c := range q.Choices {
		if c.Correct {
			correct++
		}
	}

	switch q.Type {
	case "choiceblank":
		if q.BlankCount < 1 {
			return fmt.Errorf("choiceblank question needs blank_count >= 1")
		}
		positioned := 0
		for _, c := range q.Choices {
			if c.Correct && c.BlankPosition != nil {
				if *c.BlankPosition > q.BlankCount {
					return fmt.Errorf("blank_position %d exceeds blank_count %d", *c.BlankPosition, q.BlankCount)
				}
				positioned++
			}
		}
		if positioned != q.BlankCount {
			return fmt.Errorf("expected %d positioned correct choices, got %d", q.BlankCount, positioned)
		}
	case "truefalse":
		if len(q.Choices) != 2 {
			return fmt.Errorf("truefalse question needs exactly 2 choices")
		}
		if correct != 1 {
			return fmt.Errorf("truefalse question needs exactly 1 correct choice")
		}
	default:
		if correct == 0 {
			return fmt.Errorf("question has no correct choice")
		}
	}
	return nil
}
