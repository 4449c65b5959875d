package store

import (
	"context"
	"fmt"
)

// SeedChoice is one imported answer option.
type SeedChoice struct {
	Text          string
	Correct       bool
	BlankPosition *int
}

// SeedQuestion is one imported question with its choices in display order.
type SeedQuestion struct {
	Type        string
	Text        string
	Passage     string
	Hint        string
	Explanation string
	BlankCount  int
	Choices     []SeedChoice
}

// SeedPack is an imported quizpack. Imported packs are appended to the end
// of the catalog.
type SeedPack struct {
	Keywords  string
	Questions []SeedQuestion
}

// SeedRepo writes imported packs into the question bank and catalog.
type SeedRepo interface {
	// ImportPack inserts the pack, its questions and choices, and appends
	// a catalog entry for it. Returns the new pack id.
	ImportPack(ctx context.Context, pack SeedPack) (int, error)
}

// SeedRepo returns a SeedRepo backed by this store.
func (s *Store) SeedRepo() SeedRepo {
	return &seedRepo{store: s}
}

type seedRepo struct {
	store *Store
}

func (r *seedRepo) ImportPack(ctx context.Context, pack SeedPack) (int, error) {
	client := r.store.client

	qp, err := client.Quizpack.Create().
		SetKeywords(pack.Keywords).
		SetQuestionCount(len(pack.Questions)).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create quizpack: %w", err)
	}

	for i, sq := range pack.Questions {
		builder := client.Question.Create().
			SetQuizpackID(qp.ID).
			SetQuestionOrder(i + 1).
			SetType(sq.Type).
			SetQuestion(sq.Text).
			SetBlankCount(sq.BlankCount)
		if sq.Passage != "" {
			builder = builder.SetPassage(sq.Passage)
		}
		if sq.Hint != "" {
			builder = builder.SetHint(sq.Hint)
		}
		if sq.Explanation != "" {
			builder = builder.SetExplanation(sq.Explanation)
		}
		q, err := builder.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create question %d: %w", i+1, err)
		}

		for j, sc := range sq.Choices {
			cb := client.Choice.Create().
				SetQuestionID(q.ID).
				SetChoiceOrder(j + 1).
				SetText(sc.Text).
				SetCorrect(sc.Correct)
			if sc.BlankPosition != nil {
				cb = cb.SetBlankPosition(*sc.BlankPosition)
			}
			if _, err := cb.Save(ctx); err != nil {
				return 0, fmt.Errorf("create choice %d of question %d: %w", j+1, i+1, err)
			}
		}
	}

	size, err := client.CatalogEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count catalog entries: %w", err)
	}
	_, err = client.CatalogEntry.Create().
		SetCatalogOrder(size + 1).
		SetQuizpackID(qp.ID).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("append catalog entry: %w", err)
	}

	return qp.ID, nil
}
