package progression

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hanjihoon73/lawquiz/internal/communitystats"
	"github.com/hanjihoon73/lawquiz/internal/lifecycle"
	"github.com/hanjihoon73/lawquiz/internal/quizbank"
	"github.com/hanjihoon73/lawquiz/internal/store"
	"github.com/hanjihoon73/lawquiz/internal/unlock"
)

// newTestCoordinator opens an in-memory store with two two-question packs
// and wires the full progression core over it.
func newTestCoordinator(t *testing.T) (*Coordinator, *store.Store, []int) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:progression_%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	var packs []int
	for i := 0; i < 2; i++ {
		id, err := s.SeedRepo().ImportPack(ctx, store.SeedPack{
			Keywords: fmt.Sprintf("pack %d", i+1),
			Questions: []store.SeedQuestion{
				{Type: "truefalse", Text: "q1", Explanation: "because", Choices: []store.SeedChoice{
					{Text: "True", Correct: true}, {Text: "False"},
				}},
				{Type: "truefalse", Text: "q2", Choices: []store.SeedChoice{
					{Text: "True", Correct: true}, {Text: "False"},
				}},
			},
		})
		require.NoError(t, err, "import pack %d", i+1)
		packs = append(packs, id)
	}

	log := zap.NewNop()
	lc := lifecycle.NewService(s.ProgressRepo(), s.AnswerRepo(), s.CatalogRepo(), s.BankRepo(), log)
	engine := unlock.NewEngine(s.ProgressRepo(), s.CatalogRepo(), s.BankRepo(), log)
	reader := quizbank.NewReader(s.BankRepo())
	writer := communitystats.NewWriter(s.StatsRepo(), log)
	coord := NewCoordinator(s.ProgressRepo(), s.AnswerRepo(), lc, engine, reader, writer, log)
	return coord, s, packs
}

// answerPack submits the given answers for every question of the pack,
// one bool per question.
func answerPack(t *testing.T, coord *Coordinator, s *store.Store, userID string, packID int, right []bool) {
	t.Helper()
	ctx := context.Background()
	questions, err := s.BankRepo().Questions(ctx, packID)
	require.NoError(t, err)
	require.Len(t, questions, len(right))

	for i, q := range questions {
		choice := q.Choices[1].ID // wrong answer
		if right[i] {
			choice = q.Choices[0].ID
		}
		res, err := coord.RecordAnswer(ctx, userID, packID, q.ID, quizbank.Selection{Choices: []int{choice}})
		require.NoError(t, err, "answer question %d", i+1)
		assert.Equal(t, right[i], res.Correct, "question %d", i+1)
	}
}

func TestBeginQuizpackNoConflict(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)

	decision, err := coord.BeginQuizpack(context.Background(), "u1", packs[0])
	require.NoError(t, err)
	assert.True(t, decision.Proceed)
	assert.Nil(t, decision.Blocked)
}

func TestBeginQuizpackBlockedByOtherPack(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)
	ctx := context.Background()

	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)

	decision, err := coord.BeginQuizpack(ctx, "u1", packs[1])
	require.NoError(t, err)
	assert.False(t, decision.Proceed, "another pack is mid-run")
	require.NotNil(t, decision.Blocked)
	assert.Equal(t, packs[0], decision.Blocked.QuizpackID)

	// The conflict check never aborts anything on its own.
	row, err := coord.progress.Get(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.Equal(t, store.StatusInProgress, row.Status)
}

func TestBeginQuizpackSamePackIsNotAConflict(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)
	ctx := context.Background()

	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)

	decision, err := coord.BeginQuizpack(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.True(t, decision.Proceed, "resuming the same pack needs no abort")
}

func TestRecordAnswerGradesAndPersists(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	row, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)

	questions, err := s.BankRepo().Questions(ctx, packs[0])
	require.NoError(t, err)

	res, err := coord.RecordAnswer(ctx, "u1", packs[0], questions[0].ID,
		quizbank.Selection{Choices: []int{questions[0].Choices[0].ID}})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, "because", res.Explanation)

	n, err := s.AnswerRepo().Count(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordAnswerWithoutSession(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)

	_, err := coord.RecordAnswer(context.Background(), "u1", packs[0], 1, quizbank.Selection{Choices: []int{1}})
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestFullPlaythroughUnlocksNextPack(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)
	answerPack(t, coord, s, "u1", packs[0], []bool{true, false})

	done, err := coord.CompleteQuizpack(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, done.Status)
	assert.Equal(t, 2, done.SolvedCount)
	assert.Equal(t, 1, done.CorrectCount)

	nextID, ok, err := coord.UnlockNext(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, packs[1], nextID)

	// The unlocked pack accepts an initialize now.
	row, err := coord.Initialize(ctx, "u1", packs[1])
	require.NoError(t, err)
	assert.Equal(t, store.StatusInProgress, row.Status)

	// Completion reached the community aggregates.
	stats, err := coord.stats.Get(ctx, packs[0])
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalCompletions)
	assert.InDelta(t, 50.0, stats.AverageCorrectRate, 1e-9)
}

func TestRestartBlockedByOtherPack(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	// Clear pack 1, move on to pack 2.
	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)
	answerPack(t, coord, s, "u1", packs[0], []bool{true, true})
	_, err = coord.CompleteQuizpack(ctx, "u1", packs[0])
	require.NoError(t, err)
	_, _, err = coord.UnlockNext(ctx, "u1", packs[0])
	require.NoError(t, err)
	_, err = coord.Initialize(ctx, "u1", packs[1])
	require.NoError(t, err)

	// Retrying pack 1 while pack 2 is mid-run must surface the conflict.
	decision, row, err := coord.Restart(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.False(t, decision.Proceed)
	require.NotNil(t, decision.Blocked)
	assert.Equal(t, packs[1], decision.Blocked.QuizpackID)
	assert.Nil(t, row, "no reset may happen while blocked")

	// After aborting the blocker, the restart goes through.
	_, err = coord.AbortSession(ctx, decision.Blocked.ID)
	require.NoError(t, err)
	decision, row, err = coord.Restart(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.True(t, decision.Proceed)
	require.NotNil(t, row)
	assert.Equal(t, store.StatusInProgress, row.Status)
	assert.Equal(t, 0, row.SolvedCount)
	assert.NotNil(t, row.CompletedAt, "completion history survives the retry")
}

func TestSaveProgressReplayResumeBlockedByOtherPack(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	// Clear pack 1, then start pack 2.
	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)
	answerPack(t, coord, s, "u1", packs[0], []bool{true, true})
	_, err = coord.CompleteQuizpack(ctx, "u1", packs[0])
	require.NoError(t, err)
	_, _, err = coord.UnlockNext(ctx, "u1", packs[0])
	require.NoError(t, err)
	_, err = coord.Initialize(ctx, "u1", packs[1])
	require.NoError(t, err)

	// Saving to the completed pack 1 would flip it back to in_progress,
	// giving the user two active sessions. It must be refused instead.
	_, err = coord.SaveProgress(ctx, "u1", packs[0], 0)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, packs[1], conflict.Blocked.QuizpackID)

	row, err := coord.progress.Get(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, row.Status, "refused save must not touch the row")

	active := 0
	rows, err := coord.progress.ListForUser(ctx, "u1")
	require.NoError(t, err)
	for _, r := range rows {
		if r.Status == store.StatusInProgress {
			active++
		}
	}
	assert.Equal(t, 1, active, "at most one pack may be in progress")
}

func TestSaveProgressReplayResumeWithoutConflict(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)
	answerPack(t, coord, s, "u1", packs[0], []bool{true, true})
	_, err = coord.CompleteQuizpack(ctx, "u1", packs[0])
	require.NoError(t, err)

	// With no other pack active, the implicit replay-resume still works.
	row, err := coord.SaveProgress(ctx, "u1", packs[0], 0)
	require.NoError(t, err)
	assert.Equal(t, store.StatusInProgress, row.Status)
	assert.NotNil(t, row.CompletedAt)
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)
	ctx := context.Background()

	_, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)

	_, err = coord.RecordAnswer(ctx, "u1", packs[0], 9999, quizbank.Selection{Choices: []int{1}})
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestAbortDiscardsAnswers(t *testing.T) {
	coord, s, packs := newTestCoordinator(t)
	ctx := context.Background()

	row, err := coord.Initialize(ctx, "u1", packs[0])
	require.NoError(t, err)
	answerPack(t, coord, s, "u1", packs[0], []bool{true, false})

	aborted, err := coord.Abort(ctx, "u1", packs[0])
	require.NoError(t, err)
	assert.Equal(t, store.StatusOpened, aborted.Status)

	n, err := s.AnswerRepo().Count(ctx, row.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRatePackFeedsCommunityStats(t *testing.T) {
	coord, _, packs := newTestCoordinator(t)
	ctx := context.Background()

	require.NoError(t, coord.RatePack(ctx, packs[0], 5))
	require.NoError(t, coord.RatePack(ctx, packs[0], 4))
	assert.Error(t, coord.RatePack(ctx, packs[0], 6), "out-of-range rating")

	stats, err := coord.stats.Get(ctx, packs[0])
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.RatingCount)
	assert.InDelta(t, 4.5, stats.AverageRating, 1e-9)
}
