package unlock

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// newTestEngine opens an in-memory store with a two-pack catalog.
func newTestEngine(t *testing.T) (*Engine, *store.Store, []int) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:unlock_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	var packs []int
	for i := 0; i < 2; i++ {
		id, err := s.SeedRepo().ImportPack(ctx, store.SeedPack{
			Keywords: fmt.Sprintf("pack %d", i+1),
			Questions: []store.SeedQuestion{
				{Type: "truefalse", Text: "q1", Choices: []store.SeedChoice{
					{Text: "True", Correct: true}, {Text: "False"},
				}},
				{Type: "truefalse", Text: "q2", Choices: []store.SeedChoice{
					{Text: "True", Correct: true}, {Text: "False"},
				}},
			},
		})
		if err != nil {
			t.Fatalf("import pack %d: %v", i+1, err)
		}
		packs = append(packs, id)
	}

	engine := NewEngine(s.ProgressRepo(), s.CatalogRepo(), s.BankRepo(), zap.NewNop())
	return engine, s, packs
}

func TestUnlockNextCreatesOpenedRow(t *testing.T) {
	engine, s, packs := newTestEngine(t)
	ctx := context.Background()

	nextID, ok, err := engine.UnlockNext(ctx, "u1", packs[0])
	if err != nil {
		t.Fatalf("unlock next: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true while a successor exists")
	}
	if nextID != packs[1] {
		t.Errorf("next pack = %d, want %d", nextID, packs[1])
	}

	row, err := s.ProgressRepo().Get(ctx, "u1", packs[1])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("expected a row for the unlocked pack")
	}
	if row.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", row.Status)
	}
	if row.TotalQuestionCount != 2 {
		t.Errorf("total question count = %d, want snapshot 2", row.TotalQuestionCount)
	}
	if row.SessionNumber != 0 {
		t.Errorf("session number = %d, want 0 before the first attempt", row.SessionNumber)
	}
}

func TestUnlockNextIsIdempotent(t *testing.T) {
	engine, s, packs := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := engine.UnlockNext(ctx, "u1", packs[0]); err != nil {
			t.Fatalf("unlock next (call %d): %v", i+1, err)
		}
	}

	rows, err := s.ProgressRepo().ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 after repeated unlocks", len(rows))
	}
	if rows[0].Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", rows[0].Status)
	}
}

func TestUnlockNextLeavesActiveSuccessorUntouched(t *testing.T) {
	engine, s, packs := newTestEngine(t)
	ctx := context.Background()

	active, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID: "u1", QuizpackID: packs[1], CatalogOrder: 2,
		Status: store.StatusInProgress, SessionNumber: 1,
		SolvedCount: 1, TotalQuestionCount: 2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	nextID, ok, err := engine.UnlockNext(ctx, "u1", packs[0])
	if err != nil {
		t.Fatalf("unlock next: %v", err)
	}
	if !ok || nextID != packs[1] {
		t.Fatalf("unlock = (%d, %v), want (%d, true)", nextID, ok, packs[1])
	}

	row, err := s.ProgressRepo().Get(ctx, "u1", packs[1])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress untouched", row.Status)
	}
	if row.SolvedCount != active.SolvedCount {
		t.Errorf("solved = %d, want untouched %d", row.SolvedCount, active.SolvedCount)
	}
}

func TestUnlockNextReopensClosedRow(t *testing.T) {
	engine, s, packs := newTestEngine(t)
	ctx := context.Background()

	if _, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID: "u1", QuizpackID: packs[1], CatalogOrder: 2,
		Status: store.StatusClosed, TotalQuestionCount: 2,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := engine.UnlockNext(ctx, "u1", packs[0]); err != nil {
		t.Fatalf("unlock next: %v", err)
	}

	row, err := s.ProgressRepo().Get(ctx, "u1", packs[1])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", row.Status)
	}
}

func TestUnlockNextAfterFinalPack(t *testing.T) {
	engine, _, packs := newTestEngine(t)

	nextID, ok, err := engine.UnlockNext(context.Background(), "u1", packs[1])
	if err != nil {
		t.Fatalf("unlock next: %v", err)
	}
	if ok {
		t.Errorf("ok = true, want false after the final pack")
	}
	if nextID != 0 {
		t.Errorf("next pack = %d, want 0", nextID)
	}
}

func TestUnlockNextUnknownPack(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	nextID, ok, err := engine.UnlockNext(context.Background(), "u1", 9999)
	if err != nil {
		t.Fatalf("unlock next: %v", err)
	}
	if ok || nextID != 0 {
		t.Errorf("unlock = (%d, %v), want (0, false) for a pack outside the catalog", nextID, ok)
	}
}
