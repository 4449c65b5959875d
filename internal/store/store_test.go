package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// openTestStore opens an in-memory database named after the test so
// parallel packages and repeated opens never share state.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedTestPack imports a small two-question pack and returns its id.
func seedTestPack(t *testing.T, s *Store) int {
	t.Helper()
	id, err := s.SeedRepo().ImportPack(context.Background(), SeedPack{
		Keywords: "기본권, 평등권",
		Questions: []SeedQuestion{
			{
				Type:        "multiple",
				Text:        "Which article opens the chapter on basic rights?",
				Explanation: "Article 10 guarantees human dignity.",
				Choices: []SeedChoice{
					{Text: "Article 10", Correct: true},
					{Text: "Article 21", Correct: false},
					{Text: "Article 37", Correct: false},
					{Text: "Article 111", Correct: false},
				},
			},
			{
				Type: "truefalse",
				Text: "The equality clause binds private actors directly.",
				Choices: []SeedChoice{
					{Text: "True", Correct: false},
					{Text: "False", Correct: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("import test pack: %v", err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "override.db")
	t.Setenv("LAWQUIZ_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestImportPackPopulatesBankAndCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)

	bank := s.BankRepo()
	pack, err := bank.Pack(ctx, packID)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if pack == nil {
		t.Fatal("expected imported pack to exist")
	}
	if pack.QuestionCount != 2 {
		t.Errorf("question count = %d, want 2", pack.QuestionCount)
	}
	if !pack.Active {
		t.Error("imported pack should be active")
	}

	questions, err := bank.Questions(ctx, packID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[0].Order != 1 || questions[1].Order != 2 {
		t.Errorf("question orders = %d, %d, want 1, 2", questions[0].Order, questions[1].Order)
	}
	if len(questions[0].Choices) != 4 {
		t.Errorf("choices on q1 = %d, want 4", len(questions[0].Choices))
	}
	if !questions[0].Choices[0].Correct {
		t.Error("first choice of q1 should be correct")
	}

	cat := s.CatalogRepo()
	entry, err := cat.Entry(ctx, packID)
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if entry == nil || entry.CatalogOrder != 1 {
		t.Fatalf("entry = %+v, want catalog order 1", entry)
	}
	byOrder, err := cat.EntryByOrder(ctx, 1)
	if err != nil {
		t.Fatalf("entry by order: %v", err)
	}
	if byOrder == nil || byOrder.QuizpackID != packID {
		t.Fatalf("entry at order 1 = %+v, want pack %d", byOrder, packID)
	}
	size, err := cat.Size(ctx)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 1 {
		t.Errorf("catalog size = %d, want 1", size)
	}
}

func TestImportPackAppendsToCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := seedTestPack(t, s)
	second := seedTestPack(t, s)

	entries, err := s.CatalogRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].QuizpackID != first || entries[1].QuizpackID != second {
		t.Errorf("catalog order = %d, %d, want %d, %d",
			entries[0].QuizpackID, entries[1].QuizpackID, first, second)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)
	repo := s.ProgressRepo()

	// Absent row reads as nil, not an error.
	row, err := repo.Get(ctx, "u1", packID)
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if row != nil {
		t.Fatal("expected nil for absent row")
	}

	created, err := repo.Create(ctx, &Progress{
		UserID:             "u1",
		QuizpackID:         packID,
		CatalogOrder:       1,
		Status:             StatusOpened,
		TotalQuestionCount: 2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected non-zero id")
	}
	if created.CorrectRate != nil || created.StartedAt != nil || created.CompletedAt != nil {
		t.Errorf("fresh row should have nil rate and timestamps: %+v", created)
	}

	now := time.Now().UTC().Truncate(time.Second)
	rate := 50.0
	created.Status = StatusInProgress
	created.SessionNumber = 1
	created.AttemptID = "attempt-1"
	created.SolvedCount = 1
	created.CorrectCount = 1
	created.IncorrectCount = 0
	created.CorrectRate = &rate
	created.StartedAt = &now
	created.LastPlayedAt = &now

	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusInProgress {
		t.Errorf("status = %q, want in_progress", updated.Status)
	}
	if updated.CorrectRate == nil || *updated.CorrectRate != 50 {
		t.Errorf("correct rate = %v, want 50", updated.CorrectRate)
	}
	if updated.StartedAt == nil || !updated.StartedAt.Equal(now) {
		t.Errorf("started at = %v, want %v", updated.StartedAt, now)
	}

	// Clearing the nillable fields round-trips as nil.
	updated.CorrectRate = nil
	updated.StartedAt = nil
	cleared, err := repo.Update(ctx, updated)
	if err != nil {
		t.Fatalf("update (clear): %v", err)
	}
	if cleared.CorrectRate != nil || cleared.StartedAt != nil {
		t.Errorf("cleared fields came back: rate=%v started=%v", cleared.CorrectRate, cleared.StartedAt)
	}
}

func TestReconcileCreateReturnsRaceWinner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)
	repo := s.ProgressRepo()

	winner, err := repo.Create(ctx, &Progress{
		UserID:     "u1",
		QuizpackID: packID,
		Status:     StatusInProgress,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	row, created, err := repo.ReconcileCreate(ctx, &Progress{
		UserID:     "u1",
		QuizpackID: packID,
		Status:     StatusOpened,
	})
	if err != nil {
		t.Fatalf("reconcile create: %v", err)
	}
	if created {
		t.Error("created = true, want false for a lost race")
	}
	if row.ID != winner.ID {
		t.Errorf("row id = %d, want winner %d", row.ID, winner.ID)
	}
	if row.Status != StatusInProgress {
		t.Errorf("status = %q, want the winner's in_progress", row.Status)
	}
}

func TestReconcileCreateFreshRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)

	row, created, err := s.ProgressRepo().ReconcileCreate(ctx, &Progress{
		UserID:     "u1",
		QuizpackID: packID,
		Status:     StatusOpened,
	})
	if err != nil {
		t.Fatalf("reconcile create: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if row.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestInProgressQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	first := seedTestPack(t, s)
	second := seedTestPack(t, s)
	repo := s.ProgressRepo()

	if _, err := repo.Create(ctx, &Progress{
		UserID: "u1", QuizpackID: first, CatalogOrder: 1, Status: StatusInProgress,
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := repo.Create(ctx, &Progress{
		UserID: "u1", QuizpackID: second, CatalogOrder: 2, Status: StatusOpened,
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// No exclusion: the active row comes back.
	row, err := repo.InProgress(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if row == nil || row.QuizpackID != first {
		t.Fatalf("in progress = %+v, want pack %d", row, first)
	}

	// Excluding the active pack leaves nothing.
	row, err = repo.InProgress(ctx, "u1", first)
	if err != nil {
		t.Fatalf("in progress (excluded): %v", err)
	}
	if row != nil {
		t.Errorf("in progress = %+v, want nil when the only active pack is excluded", row)
	}

	// Another user sees nothing.
	row, err = repo.InProgress(ctx, "u2", 0)
	if err != nil {
		t.Fatalf("in progress (other user): %v", err)
	}
	if row != nil {
		t.Errorf("in progress = %+v for other user, want nil", row)
	}
}

func TestAnswerUpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)
	repo := s.AnswerRepo()

	session, err := s.ProgressRepo().Create(ctx, &Progress{
		UserID: "u1", QuizpackID: packID, Status: StatusInProgress,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	questions, err := s.BankRepo().Questions(ctx, packID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	qID := questions[0].ID

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Upsert(ctx, &Answer{
		SessionID:   session.ID,
		QuestionID:  qID,
		AnswerOrder: 1,
		ChoiceIDs:   []int{questions[0].Choices[1].ID},
		Correct:     false,
		AnsweredAt:  now,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Answering the same question again replaces the row.
	err = repo.Upsert(ctx, &Answer{
		SessionID:   session.ID,
		QuestionID:  qID,
		AnswerOrder: 1,
		ChoiceIDs:   []int{questions[0].Choices[0].ID},
		Correct:     true,
		AnsweredAt:  now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("upsert (again): %v", err)
	}

	n, err := repo.Count(ctx, session.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("answers = %d, want 1 after re-answer", n)
	}

	answers, err := repo.List(ctx, session.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !answers[0].Correct {
		t.Error("re-answer should have overwritten correct = true")
	}
	if len(answers[0].ChoiceIDs) != 1 || answers[0].ChoiceIDs[0] != questions[0].Choices[0].ID {
		t.Errorf("choice ids = %v, want [%d]", answers[0].ChoiceIDs, questions[0].Choices[0].ID)
	}
}

func TestAnswerDeleteForSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)
	repo := s.AnswerRepo()

	session, err := s.ProgressRepo().Create(ctx, &Progress{
		UserID: "u1", QuizpackID: packID, Status: StatusInProgress,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	other, err := s.ProgressRepo().Create(ctx, &Progress{
		UserID: "u2", QuizpackID: packID, Status: StatusInProgress,
	})
	if err != nil {
		t.Fatalf("create other session: %v", err)
	}

	questions, err := s.BankRepo().Questions(ctx, packID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}

	now := time.Now().UTC()
	for i, q := range questions {
		for _, sess := range []int{session.ID, other.ID} {
			err := repo.Upsert(ctx, &Answer{
				SessionID: sess, QuestionID: q.ID, AnswerOrder: i + 1,
				ChoiceIDs: []int{q.Choices[0].ID}, AnsweredAt: now,
			})
			if err != nil {
				t.Fatalf("upsert q%d: %v", i+1, err)
			}
		}
	}

	if err := repo.DeleteForSession(ctx, session.ID); err != nil {
		t.Fatalf("delete for session: %v", err)
	}

	n, err := repo.Count(ctx, session.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("answers left = %d, want 0", n)
	}

	// The other session's answers survive.
	n, err = repo.Count(ctx, other.ID)
	if err != nil {
		t.Fatalf("count other: %v", err)
	}
	if n != 2 {
		t.Errorf("other session answers = %d, want 2", n)
	}
}

func TestStatsSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	packID := seedTestPack(t, s)
	repo := s.StatsRepo()

	got, err := repo.Get(ctx, packID)
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil stats before first save")
	}

	err = repo.Save(ctx, &PackStatsData{
		QuizpackID:         packID,
		TotalCompletions:   1,
		TotalCorrectCount:  8,
		TotalQuestionCount: 10,
		AverageCorrectRate: 80,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	err = repo.Save(ctx, &PackStatsData{
		QuizpackID:         packID,
		TotalCompletions:   2,
		TotalCorrectCount:  14,
		TotalQuestionCount: 20,
		AverageCorrectRate: 70,
		RatingSum:          9,
		RatingCount:        2,
		AverageRating:      4.5,
	})
	if err != nil {
		t.Fatalf("save (update): %v", err)
	}

	got, err = repo.Get(ctx, packID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalCompletions != 2 {
		t.Errorf("completions = %d, want 2", got.TotalCompletions)
	}
	if got.AverageCorrectRate != 70 {
		t.Errorf("average rate = %v, want 70", got.AverageCorrectRate)
	}
	if got.AverageRating != 4.5 {
		t.Errorf("average rating = %v, want 4.5", got.AverageRating)
	}
}
