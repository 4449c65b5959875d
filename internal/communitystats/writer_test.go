package communitystats

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// memStats is an in-memory StatsRepo keyed by pack id.
type memStats struct {
	rows map[int]store.PackStatsData
}

func newMemStats() *memStats {
	return &memStats{rows: make(map[int]store.PackStatsData)}
}

func (m *memStats) Get(_ context.Context, packID int) (*store.PackStatsData, error) {
	row, ok := m.rows[packID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memStats) Save(_ context.Context, data *store.PackStatsData) error {
	m.rows[data.QuizpackID] = *data
	return nil
}

func TestRecordCompletionAccumulates(t *testing.T) {
	w := NewWriter(newMemStats(), zap.NewNop())
	ctx := context.Background()

	if err := w.RecordCompletion(ctx, 1, 8, 10); err != nil {
		t.Fatalf("record completion: %v", err)
	}
	if err := w.RecordCompletion(ctx, 1, 6, 10); err != nil {
		t.Fatalf("record completion (second): %v", err)
	}

	got, err := w.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalCompletions != 2 {
		t.Errorf("completions = %d, want 2", got.TotalCompletions)
	}
	if got.TotalCorrectCount != 14 || got.TotalQuestionCount != 20 {
		t.Errorf("totals = %d/%d, want 14/20", got.TotalCorrectCount, got.TotalQuestionCount)
	}
	if got.AverageCorrectRate != 70 {
		t.Errorf("average rate = %v, want 70", got.AverageCorrectRate)
	}
}

func TestRecordCompletionPerPack(t *testing.T) {
	w := NewWriter(newMemStats(), zap.NewNop())
	ctx := context.Background()

	if err := w.RecordCompletion(ctx, 1, 10, 10); err != nil {
		t.Fatalf("record completion pack 1: %v", err)
	}
	if err := w.RecordCompletion(ctx, 2, 5, 10); err != nil {
		t.Fatalf("record completion pack 2: %v", err)
	}

	one, _ := w.Get(ctx, 1)
	two, _ := w.Get(ctx, 2)
	if one.AverageCorrectRate != 100 {
		t.Errorf("pack 1 rate = %v, want 100", one.AverageCorrectRate)
	}
	if two.AverageCorrectRate != 50 {
		t.Errorf("pack 2 rate = %v, want 50", two.AverageCorrectRate)
	}
}

func TestRecordRating(t *testing.T) {
	w := NewWriter(newMemStats(), zap.NewNop())
	ctx := context.Background()

	for _, r := range []int{5, 4} {
		if err := w.RecordRating(ctx, 1, r); err != nil {
			t.Fatalf("record rating %d: %v", r, err)
		}
	}

	got, err := w.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RatingCount != 2 || got.RatingSum != 9 {
		t.Errorf("ratings = %d/%d, want count 2 sum 9", got.RatingCount, got.RatingSum)
	}
	if got.AverageRating != 4.5 {
		t.Errorf("average rating = %v, want 4.5", got.AverageRating)
	}
}

func TestRecordRatingBounds(t *testing.T) {
	w := NewWriter(newMemStats(), zap.NewNop())
	ctx := context.Background()

	for _, r := range []int{0, -1, 6} {
		if err := w.RecordRating(ctx, 1, r); err == nil {
			t.Errorf("rating %d accepted, want error", r)
		}
	}

	got, err := w.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("stats = %+v, want nil after only rejected ratings", got)
	}
}

func TestGetUnknownPack(t *testing.T) {
	w := NewWriter(newMemStats(), zap.NewNop())

	got, err := w.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("stats = %+v, want nil", got)
	}
}
