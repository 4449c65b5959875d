package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/store"
)

// newTestService opens an in-memory store seeded with a three-question
// pack and returns a lifecycle service on a fixed clock.
func newTestService(t *testing.T) (*Service, *store.Store, int) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:lifecycle_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	packID, err := s.SeedRepo().ImportPack(context.Background(), store.SeedPack{
		Keywords: "헌법재판소",
		Questions: []store.SeedQuestion{
			{Type: "truefalse", Text: "q1", Choices: []store.SeedChoice{
				{Text: "True", Correct: true}, {Text: "False"},
			}},
			{Type: "truefalse", Text: "q2", Choices: []store.SeedChoice{
				{Text: "True", Correct: true}, {Text: "False"},
			}},
			{Type: "truefalse", Text: "q3", Choices: []store.SeedChoice{
				{Text: "True", Correct: true}, {Text: "False"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("import pack: %v", err)
	}

	svc := NewService(s.ProgressRepo(), s.AnswerRepo(), s.CatalogRepo(), s.BankRepo(), zap.NewNop())
	svc.clock = func() time.Time { return testNow }
	return svc, s, packID
}

// answerAll writes one answer row per question, the first wrong and the
// rest right.
func answerAll(t *testing.T, s *store.Store, sessionID, packID int) {
	t.Helper()
	ctx := context.Background()
	questions, err := s.BankRepo().Questions(ctx, packID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	for i, q := range questions {
		err := s.AnswerRepo().Upsert(ctx, &store.Answer{
			SessionID:   sessionID,
			QuestionID:  q.ID,
			AnswerOrder: i + 1,
			ChoiceIDs:   []int{q.Choices[0].ID},
			Correct:     i != 0,
			AnsweredAt:  testNow,
		})
		if err != nil {
			t.Fatalf("upsert answer %d: %v", i+1, err)
		}
	}
}

func TestInitializeCreatesFirstPackRow(t *testing.T) {
	svc, _, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if row.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress", row.Status)
	}
	if row.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1", row.SessionNumber)
	}
	if row.TotalQuestionCount != 3 {
		t.Errorf("total question count = %d, want snapshot 3", row.TotalQuestionCount)
	}
	if row.AttemptID == "" {
		t.Error("expected a fresh attempt id")
	}
	if row.StartedAt == nil {
		t.Error("expected started at to be set")
	}
}

func TestInitializeSecondPackWithoutUnlockIsLocked(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	// A second pack exists in the catalog but nothing has unlocked it.
	secondID, err := s.SeedRepo().ImportPack(ctx, store.SeedPack{
		Keywords: "second",
		Questions: []store.SeedQuestion{
			{Type: "truefalse", Text: "q1", Choices: []store.SeedChoice{
				{Text: "True", Correct: true}, {Text: "False"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("import second pack: %v", err)
	}

	_, err = svc.Initialize(ctx, "u1", secondID)
	if !errors.Is(err, ErrSequenceViolation) {
		t.Fatalf("err = %v, want ErrSequenceViolation", err)
	}
}

func TestInitializeUnknownPack(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Initialize(context.Background(), "u1", 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInitializeResumeKeepsSession(t *testing.T) {
	svc, _, packID := newTestService(t)
	ctx := context.Background()

	first, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	second, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize (resume): %v", err)
	}
	if second.SessionNumber != first.SessionNumber {
		t.Errorf("session number = %d, want %d (resume must not bump)", second.SessionNumber, first.SessionNumber)
	}
	if second.AttemptID != first.AttemptID {
		t.Errorf("attempt id changed on resume: %q -> %q", first.AttemptID, second.AttemptID)
	}
}

func TestInitializeAdoptsRowCreatedElsewhere(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	// Another writer already created and activated the row.
	winner, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID:             "u1",
		QuizpackID:         packID,
		CatalogOrder:       1,
		Status:             store.StatusInProgress,
		SessionNumber:      1,
		AttemptID:          "winner",
		TotalQuestionCount: 3,
	})
	if err != nil {
		t.Fatalf("create winner: %v", err)
	}

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if row.ID != winner.ID {
		t.Errorf("row id = %d, want winner %d", row.ID, winner.ID)
	}
	if row.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1 (lost race resumes, not restarts)", row.SessionNumber)
	}
	if row.AttemptID != "winner" {
		t.Errorf("attempt id = %q, want winner", row.AttemptID)
	}
}

func TestSaveProgressDerivesTallyFromAnswers(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	answerAll(t, s, row.ID, packID)

	saved, err := svc.SaveProgress(ctx, "u1", packID, 3)
	if err != nil {
		t.Fatalf("save progress: %v", err)
	}
	if saved.CurrentQuestionOrder != 3 {
		t.Errorf("cursor = %d, want 3", saved.CurrentQuestionOrder)
	}
	if saved.SolvedCount != 3 || saved.CorrectCount != 2 || saved.IncorrectCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1",
			saved.SolvedCount, saved.CorrectCount, saved.IncorrectCount)
	}
}

func TestSaveProgressWithoutSession(t *testing.T) {
	svc, _, packID := newTestService(t)

	_, err := svc.SaveProgress(context.Background(), "u1", packID, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCompleteFinalizesSession(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	answerAll(t, s, row.ID, packID)

	done, err := svc.Complete(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	if done.CompletedAt == nil {
		t.Error("expected completed at to be set")
	}
	if done.CurrentQuestionOrder != 3 {
		t.Errorf("cursor = %d, want 3", done.CurrentQuestionOrder)
	}
	if done.SessionNumber != 2 {
		t.Errorf("session number = %d, want 2", done.SessionNumber)
	}

	// A duplicate complete call changes nothing.
	again, err := svc.Complete(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("complete (again): %v", err)
	}
	if again.SessionNumber != 2 {
		t.Errorf("session number after duplicate complete = %d, want 2", again.SessionNumber)
	}
}

func TestResetDiscardsAnswersAndStartsOver(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	answerAll(t, s, row.ID, packID)
	if _, err := svc.Complete(ctx, "u1", packID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	fresh, err := svc.Reset(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if fresh.Status != store.StatusInProgress {
		t.Errorf("status = %q, want in_progress", fresh.Status)
	}
	if fresh.SessionNumber != 3 {
		t.Errorf("session number = %d, want 3", fresh.SessionNumber)
	}
	if fresh.SolvedCount != 0 || fresh.CurrentQuestionOrder != 0 {
		t.Errorf("counters not zeroed: %+v", fresh)
	}
	if fresh.CompletedAt == nil {
		t.Error("completion history should survive a reset")
	}

	n, err := s.AnswerRepo().Count(ctx, row.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("answers after reset = %d, want 0", n)
	}
}

func TestResetRejectsActiveSession(t *testing.T) {
	svc, _, packID := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Initialize(ctx, "u1", packID); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	_, err := svc.Reset(ctx, "u1", packID)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
}

func TestAbortFreshPackReturnsToOpened(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	answerAll(t, s, row.ID, packID)

	aborted, err := svc.Abort(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if aborted.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", aborted.Status)
	}
	if aborted.StartedAt != nil {
		t.Errorf("started at = %v, want nil", aborted.StartedAt)
	}

	n, err := s.AnswerRepo().Count(ctx, row.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("answers after abort = %d, want 0", n)
	}
}

func TestAbortReplayReturnsToCompleted(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	answerAll(t, s, row.ID, packID)
	if _, err := svc.Complete(ctx, "u1", packID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.Reset(ctx, "u1", packID); err != nil {
		t.Fatalf("reset: %v", err)
	}
	answerAll(t, s, row.ID, packID)

	aborted, err := svc.Abort(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if aborted.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed (cleared before the replay)", aborted.Status)
	}
	if aborted.CompletedAt == nil {
		t.Error("completion marker should survive the abort")
	}
	if aborted.SolvedCount != 0 {
		t.Errorf("solved = %d, want 0 after abort", aborted.SolvedCount)
	}
}

func TestAbortIdleSessionIsNoop(t *testing.T) {
	svc, s, packID := newTestService(t)
	ctx := context.Background()

	created, err := s.ProgressRepo().Create(ctx, &store.Progress{
		UserID: "u1", QuizpackID: packID, CatalogOrder: 1,
		Status: store.StatusOpened, TotalQuestionCount: 3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	row, err := svc.Abort(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if row.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened untouched", row.Status)
	}
	if row.ID != created.ID {
		t.Errorf("row id = %d, want %d", row.ID, created.ID)
	}
}

func TestAbortSessionByID(t *testing.T) {
	svc, _, packID := newTestService(t)
	ctx := context.Background()

	row, err := svc.Initialize(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	aborted, err := svc.AbortSession(ctx, row.ID)
	if err != nil {
		t.Fatalf("abort session: %v", err)
	}
	if aborted.Status != store.StatusOpened {
		t.Errorf("status = %q, want opened", aborted.Status)
	}

	_, err = svc.AbortSession(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for unknown session", err)
	}
}
