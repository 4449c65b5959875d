package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func row(status string) store.Progress {
	return store.Progress{
		ID:                 1,
		UserID:             "u1",
		QuizpackID:         7,
		CatalogOrder:       2,
		Status:             status,
		TotalQuestionCount: 10,
		SessionNumber:      1,
	}
}

func TestTallyRate(t *testing.T) {
	if r := (Tally{}).Rate(); r != nil {
		t.Errorf("Rate() on empty tally = %v, want nil", *r)
	}

	tests := []struct {
		tally Tally
		want  float64
	}{
		{Tally{Solved: 10, Correct: 10}, 100},
		{Tally{Solved: 10, Correct: 7, Incorrect: 3}, 70},
		{Tally{Solved: 3, Correct: 1, Incorrect: 2}, 100.0 / 3},
		{Tally{Solved: 4, Correct: 0, Incorrect: 4}, 0},
	}
	for _, tt := range tests {
		got := tt.tally.Rate()
		if got == nil {
			t.Errorf("Rate(%+v) = nil, want %v", tt.tally, tt.want)
			continue
		}
		if diff := *got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Rate(%+v) = %v, want %v", tt.tally, *got, tt.want)
		}
	}
}

func TestInitializeClosedIsSequenceViolation(t *testing.T) {
	_, err := Initialize(row(store.StatusClosed), "a1", testNow)
	if !errors.Is(err, ErrSequenceViolation) {
		t.Fatalf("err = %v, want ErrSequenceViolation", err)
	}
}

func TestInitializeOpened(t *testing.T) {
	got, err := Initialize(row(store.StatusOpened), "attempt-1", testNow)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress", got.Status)
	}
	if got.SessionNumber != 2 {
		t.Errorf("session number = %d, want 2", got.SessionNumber)
	}
	if got.AttemptID != "attempt-1" {
		t.Errorf("attempt id = %q, want attempt-1", got.AttemptID)
	}
	if got.StartedAt == nil || !got.StartedAt.Equal(testNow) {
		t.Errorf("started at = %v, want %v", got.StartedAt, testNow)
	}
	if got.LastPlayedAt == nil || !got.LastPlayedAt.Equal(testNow) {
		t.Errorf("last played at = %v, want %v", got.LastPlayedAt, testNow)
	}
}

func TestInitializeInProgressOnlyTouches(t *testing.T) {
	p := row(store.StatusInProgress)
	started := testNow.Add(-time.Hour)
	p.StartedAt = &started
	p.AttemptID = "old"
	p.CurrentQuestionOrder = 4
	p.SolvedCount = 4

	got, err := Initialize(p, "new", testNow)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1 (resume must not bump)", got.SessionNumber)
	}
	if got.AttemptID != "old" {
		t.Errorf("attempt id = %q, want old (resume keeps the attempt)", got.AttemptID)
	}
	if got.CurrentQuestionOrder != 4 || got.SolvedCount != 4 {
		t.Errorf("cursor/solved = %d/%d, want 4/4", got.CurrentQuestionOrder, got.SolvedCount)
	}
	if got.LastPlayedAt == nil || !got.LastPlayedAt.Equal(testNow) {
		t.Errorf("last played at = %v, want %v", got.LastPlayedAt, testNow)
	}
	if got.StartedAt == nil || !got.StartedAt.Equal(started) {
		t.Errorf("started at = %v, want unchanged %v", got.StartedAt, started)
	}
}

func TestInitializeCompletedIsNoop(t *testing.T) {
	p := row(store.StatusCompleted)
	done := testNow.Add(-24 * time.Hour)
	p.CompletedAt = &done
	p.SessionNumber = 3

	got, err := Initialize(p, "new", testNow)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got != p {
		t.Errorf("completed row changed: got %+v, want %+v", got, p)
	}
}

func TestSaveFromOpenedRejected(t *testing.T) {
	_, err := Save(row(store.StatusOpened), 3, Tally{Solved: 3}, testNow)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
	if ite.From != store.StatusOpened {
		t.Errorf("from = %q, want opened", ite.From)
	}
}

func TestSaveCursorBounds(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		wantOK bool
	}{
		{"negative", -1, false},
		{"zero", 0, true},
		{"within", 5, true},
		{"at total", 10, true},
		{"past total", 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Save(row(store.StatusInProgress), tt.cursor, Tally{}, testNow)
			if tt.wantOK && err != nil {
				t.Fatalf("save cursor %d: %v", tt.cursor, err)
			}
			if !tt.wantOK && !errors.Is(err, ErrCursorOutOfRange) {
				t.Fatalf("save cursor %d: err = %v, want ErrCursorOutOfRange", tt.cursor, err)
			}
		})
	}
}

func TestSaveRecordsTally(t *testing.T) {
	got, err := Save(row(store.StatusInProgress), 6, Tally{Solved: 6, Correct: 4, Incorrect: 2}, testNow)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.CurrentQuestionOrder != 6 {
		t.Errorf("cursor = %d, want 6", got.CurrentQuestionOrder)
	}
	if got.SolvedCount != 6 || got.CorrectCount != 4 || got.IncorrectCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 6/4/2", got.SolvedCount, got.CorrectCount, got.IncorrectCount)
	}
	if got.CorrectRate == nil || *got.CorrectRate < 66.6 || *got.CorrectRate > 66.7 {
		t.Errorf("correct rate = %v, want ~66.67", got.CorrectRate)
	}
	if got.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1 (save must not bump)", got.SessionNumber)
	}
}

func TestSaveOnCompletedResumesInProgress(t *testing.T) {
	p := row(store.StatusCompleted)
	done := testNow.Add(-time.Hour)
	p.CompletedAt = &done
	p.SessionNumber = 2

	got, err := Save(p, 1, Tally{Solved: 1, Correct: 1}, testNow)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress (implicit replay-resume)", got.Status)
	}
	if got.SessionNumber != 2 {
		t.Errorf("session number = %d, want 2 (implicit resume must not bump)", got.SessionNumber)
	}
	if got.CompletedAt == nil {
		t.Error("completed at cleared, want preserved as history")
	}
}

func TestCompleteFromInProgress(t *testing.T) {
	p := row(store.StatusInProgress)
	started := testNow.Add(-90 * time.Second)
	p.StartedAt = &started
	p.CurrentQuestionOrder = 9

	got, err := Complete(p, Tally{Solved: 10, Correct: 8, Incorrect: 2}, testNow)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.CurrentQuestionOrder != 10 {
		t.Errorf("cursor = %d, want 10 (snaps to total)", got.CurrentQuestionOrder)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
		t.Errorf("completed at = %v, want %v", got.CompletedAt, testNow)
	}
	if got.SessionNumber != 2 {
		t.Errorf("session number = %d, want 2", got.SessionNumber)
	}
	if got.TotalTimeSeconds != 90 {
		t.Errorf("total time = %ds, want 90", got.TotalTimeSeconds)
	}
	if got.CorrectRate == nil || *got.CorrectRate != 80 {
		t.Errorf("correct rate = %v, want 80", got.CorrectRate)
	}
}

func TestCompleteTwiceIsNoop(t *testing.T) {
	p := row(store.StatusCompleted)
	done := testNow.Add(-time.Hour)
	p.CompletedAt = &done
	p.SessionNumber = 2

	got, err := Complete(p, Tally{Solved: 10, Correct: 10}, testNow)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != p {
		t.Errorf("second complete changed the row: got %+v, want %+v", got, p)
	}
}

func TestCompleteFromOpenedRejected(t *testing.T) {
	_, err := Complete(row(store.StatusOpened), Tally{}, testNow)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
}

func TestResetRequiresCompleted(t *testing.T) {
	for _, status := range []string{store.StatusClosed, store.StatusOpened, store.StatusInProgress} {
		_, err := Reset(row(status), "a2", testNow)
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("reset from %s: err = %v, want InvalidTransitionError", status, err)
		}
	}
}

func TestResetStartsFreshAttempt(t *testing.T) {
	p := row(store.StatusCompleted)
	done := testNow.Add(-time.Hour)
	rate := 80.0
	p.CompletedAt = &done
	p.SessionNumber = 2
	p.CurrentQuestionOrder = 10
	p.SolvedCount = 10
	p.CorrectCount = 8
	p.IncorrectCount = 2
	p.CorrectRate = &rate
	p.TotalTimeSeconds = 90

	got, err := Reset(p, "attempt-2", testNow)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress", got.Status)
	}
	if got.SessionNumber != 3 {
		t.Errorf("session number = %d, want 3", got.SessionNumber)
	}
	if got.CurrentQuestionOrder != 0 || got.SolvedCount != 0 || got.CorrectCount != 0 || got.IncorrectCount != 0 {
		t.Errorf("counters not zeroed: %+v", got)
	}
	if got.CorrectRate != nil {
		t.Errorf("correct rate = %v, want nil", *got.CorrectRate)
	}
	if got.TotalTimeSeconds != 0 {
		t.Errorf("total time = %d, want 0", got.TotalTimeSeconds)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Errorf("completed at = %v, want preserved %v", got.CompletedAt, done)
	}
	if got.StartedAt == nil || !got.StartedAt.Equal(testNow) {
		t.Errorf("started at = %v, want %v", got.StartedAt, testNow)
	}
}

func TestAbortNotInProgressIsNoop(t *testing.T) {
	for _, status := range []string{store.StatusClosed, store.StatusOpened, store.StatusCompleted} {
		p := row(status)
		got, err := Abort(p, testNow)
		if err != nil {
			t.Fatalf("abort from %s: %v", status, err)
		}
		if got != p {
			t.Errorf("abort from %s changed the row: got %+v, want %+v", status, got, p)
		}
	}
}

func TestAbortNeverCompletedReturnsToOpened(t *testing.T) {
	p := row(store.StatusInProgress)
	started := testNow.Add(-time.Minute)
	p.StartedAt = &started
	p.AttemptID = "attempt-1"
	p.CurrentQuestionOrder = 2
	p.SolvedCount = 2
	p.CorrectCount = 1
	p.IncorrectCount = 1

	got, err := Abort(p, testNow)
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if got.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", got.Status)
	}
	if got.StartedAt != nil {
		t.Errorf("started at = %v, want nil", got.StartedAt)
	}
	if got.AttemptID != "" {
		t.Errorf("attempt id = %q, want empty", got.AttemptID)
	}
	if got.CurrentQuestionOrder != 0 || got.SolvedCount != 0 || got.CorrectCount != 0 || got.IncorrectCount != 0 {
		t.Errorf("counters not zeroed: %+v", got)
	}
}

func TestAbortPreviouslyCompletedReturnsToCompleted(t *testing.T) {
	p := row(store.StatusInProgress)
	started := testNow.Add(-time.Minute)
	done := testNow.Add(-24 * time.Hour)
	p.StartedAt = &started
	p.CompletedAt = &done
	p.SessionNumber = 3
	p.SolvedCount = 5
	p.CorrectCount = 5
	p.CurrentQuestionOrder = 5

	got, err := Abort(p, testNow)
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if got.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed (pack was cleared before the replay)", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Errorf("completed at = %v, want preserved %v", got.CompletedAt, done)
	}
	if got.SolvedCount != 0 || got.CorrectCount != 0 || got.CurrentQuestionOrder != 0 {
		t.Errorf("counters not zeroed: %+v", got)
	}
	if got.SessionNumber != 3 {
		t.Errorf("session number = %d, want 3 (abort must not bump)", got.SessionNumber)
	}
}
