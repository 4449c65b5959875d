package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// newTestCatalog opens an in-memory store with three single-question packs.
func newTestCatalog(t *testing.T) (*Service, *store.Store, []int) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	var packs []int
	for i := 0; i < 3; i++ {
		id, err := s.SeedRepo().ImportPack(ctx, store.SeedPack{
			Keywords: fmt.Sprintf("keywords %d", i+1),
			Questions: []store.SeedQuestion{
				{Type: "truefalse", Text: "q1", Choices: []store.SeedChoice{
					{Text: "True", Correct: true}, {Text: "False"},
				}},
			},
		})
		if err != nil {
			t.Fatalf("import pack %d: %v", i+1, err)
		}
		packs = append(packs, id)
	}

	svc := NewService(s.ProgressRepo(), s.CatalogRepo(), s.BankRepo(), s.StatsRepo())
	return svc, s, packs
}

func TestOverviewFreshUser(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	rows, err := svc.Overview(context.Background(), "u1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	// Without any progress the first pack is reachable, the rest locked.
	if rows[0].Status != store.StatusOpened {
		t.Errorf("pack 1 status = %q, want opened", rows[0].Status)
	}
	for i := 1; i < 3; i++ {
		if rows[i].Status != store.StatusClosed {
			t.Errorf("pack %d status = %q, want closed", i+1, rows[i].Status)
		}
	}
	if rows[0].CatalogOrder != 1 || rows[2].CatalogOrder != 3 {
		t.Errorf("catalog orders = %d..%d, want 1..3", rows[0].CatalogOrder, rows[2].CatalogOrder)
	}
	if rows[0].QuestionCount != 1 {
		t.Errorf("question count = %d, want 1", rows[0].QuestionCount)
	}
}

func TestOverviewOverlaysProgress(t *testing.T) {
	svc, s, packs := newTestCatalog(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rate := 100.0
	if _, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID: "u1", QuizpackID: packs[0], CatalogOrder: 1,
		Status: store.StatusCompleted, SessionNumber: 2,
		SolvedCount: 1, CorrectCount: 1, CorrectRate: &rate,
		CurrentQuestionOrder: 1, TotalQuestionCount: 1,
		CompletedAt: &now,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := svc.Overview(ctx, "u1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if rows[0].Status != store.StatusCompleted {
		t.Errorf("pack 1 status = %q, want completed", rows[0].Status)
	}
	if rows[0].CorrectRate == nil || *rows[0].CorrectRate != 100 {
		t.Errorf("pack 1 rate = %v, want 100", rows[0].CorrectRate)
	}
	if rows[0].SolvedCount != 1 {
		t.Errorf("pack 1 solved = %d, want 1", rows[0].SolvedCount)
	}

	// The successor of a completed pack displays opened even before its
	// row exists.
	if rows[1].Status != store.StatusOpened {
		t.Errorf("pack 2 status = %q, want opened", rows[1].Status)
	}
	if rows[2].Status != store.StatusClosed {
		t.Errorf("pack 3 status = %q, want closed", rows[2].Status)
	}
}

func TestOverviewIncludesCommunityRating(t *testing.T) {
	svc, s, packs := newTestCatalog(t)
	ctx := context.Background()

	if err := s.StatsRepo().Save(ctx, &store.PackStatsData{
		QuizpackID: packs[0], RatingSum: 9, RatingCount: 2, AverageRating: 4.5,
	}); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	rows, err := svc.Overview(ctx, "u1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if rows[0].AverageRating != 4.5 {
		t.Errorf("pack 1 rating = %v, want 4.5", rows[0].AverageRating)
	}
	if rows[1].AverageRating != 0 {
		t.Errorf("pack 2 rating = %v, want 0", rows[1].AverageRating)
	}
}

// failingStatsRepo returns an error from every call.
type failingStatsRepo struct{ err error }

func (f failingStatsRepo) Get(ctx context.Context, packID int) (*store.PackStatsData, error) {
	return nil, f.err
}

func (f failingStatsRepo) Save(ctx context.Context, data *store.PackStatsData) error {
	return f.err
}

func TestOverviewSurfacesStatsError(t *testing.T) {
	_, s, _ := newTestCatalog(t)

	broken := errors.New("stats table unavailable")
	svc := NewService(s.ProgressRepo(), s.CatalogRepo(), s.BankRepo(), failingStatsRepo{err: broken})

	_, err := svc.Overview(context.Background(), "u1")
	if !errors.Is(err, broken) {
		t.Fatalf("overview error = %v, want %v", err, broken)
	}
}

func TestOverviewIsPerUser(t *testing.T) {
	svc, s, packs := newTestCatalog(t)
	ctx := context.Background()

	if _, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID: "u1", QuizpackID: packs[0], CatalogOrder: 1,
		Status: store.StatusInProgress, SessionNumber: 1, TotalQuestionCount: 1,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := svc.Overview(ctx, "u2")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if rows[0].Status != store.StatusOpened {
		t.Errorf("pack 1 status for u2 = %q, want opened", rows[0].Status)
	}
}
