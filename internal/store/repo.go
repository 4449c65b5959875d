package store

import (
	"context"
	"time"
)

// Progression states for a UserQuizpack row. Transitions between them are
// owned by the lifecycle package; the store treats them as opaque strings.
const (
	StatusClosed     = "closed"
	StatusOpened     = "opened"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Progress is one user's progression row for one quizpack ("session" once
// the pack is in progress). At most one row exists per (UserID, QuizpackID).
type Progress struct {
	ID                   int
	UserID               string
	QuizpackID           int
	CatalogOrder         int
	Status               string
	CurrentQuestionOrder int
	SolvedCount          int
	CorrectCount         int
	IncorrectCount       int
	CorrectRate          *float64
	TotalQuestionCount   int
	SessionNumber        int
	AttemptID            string
	StartedAt            *time.Time
	LastPlayedAt         *time.Time
	CompletedAt          *time.Time
	TotalTimeSeconds     int
}

// Answer is one answered question within a session.
type Answer struct {
	ID            int
	SessionID     int // owning Progress row
	QuestionID    int
	AnswerOrder   int
	ChoiceIDs     []int
	BlankAnswers  map[int]int
	Correct       bool
	AnsweredAt    time.Time
}

// CatalogEntry assigns a quizpack its position in the unlock sequence.
type CatalogEntry struct {
	CatalogOrder int
	QuizpackID   int
}

// PackInfo is quizpack metadata from the question bank.
type PackInfo struct {
	ID            int
	Keywords      string
	QuestionCount int
	Active        bool
}

// Question is a bank question with its choices, ordered for display.
type Question struct {
	ID          int
	QuizpackID  int
	Order       int
	Type        string
	Text        string
	Passage     string
	Hint        string
	Explanation string
	BlankCount  int
	Choices     []Choice
}

// Choice is one answer option.
type Choice struct {
	ID            int
	Order         int
	Text          string
	Correct       bool
	BlankPosition *int
}

// PackStatsData holds community-wide aggregates for one quizpack.
type PackStatsData struct {
	QuizpackID         int
	TotalCompletions   int
	TotalCorrectCount  int
	TotalQuestionCount int
	AverageCorrectRate float64
	RatingSum          int
	RatingCount        int
	AverageRating      float64
}

// ProgressRepo manages UserQuizpack rows.
type ProgressRepo interface {
	// Get returns the row for (userID, packID), or nil if none exists.
	Get(ctx context.Context, userID string, packID int) (*Progress, error)

	// GetByID returns the row with the given surrogate key, or nil.
	GetByID(ctx context.Context, id int) (*Progress, error)

	// Create inserts a new row. A uniqueness-constraint conflict is
	// returned as-is; callers wanting race recovery use ReconcileCreate.
	Create(ctx context.Context, p *Progress) (*Progress, error)

	// ReconcileCreate inserts a new row, and on a uniqueness conflict
	// re-fetches and returns the row that won the race. The boolean
	// reports whether this call created the row.
	ReconcileCreate(ctx context.Context, p *Progress) (*Progress, bool, error)

	// Update persists all mutable fields of p, keyed by p.ID.
	Update(ctx context.Context, p *Progress) (*Progress, error)

	// InProgress returns the user's in_progress row, skipping
	// excludePackID (0 = exclude nothing). Nil if no pack is active.
	InProgress(ctx context.Context, userID string, excludePackID int) (*Progress, error)

	// ListForUser returns all of the user's rows.
	ListForUser(ctx context.Context, userID string) ([]Progress, error)
}

// AnswerRepo manages UserQuizAnswer rows.
type AnswerRepo interface {
	// Upsert creates the answer row, or updates it in place when the
	// question was already answered in this session.
	Upsert(ctx context.Context, a *Answer) error

	// List returns all answers for a session.
	List(ctx context.Context, sessionID int) ([]Answer, error)

	// Count returns the number of answer rows for a session.
	Count(ctx context.Context, sessionID int) (int, error)

	// DeleteForSession removes every answer row owned by the session.
	DeleteForSession(ctx context.Context, sessionID int) error
}

// CatalogRepo reads the immutable unlock sequence.
type CatalogRepo interface {
	// Entry returns the catalog entry for packID, or nil if the pack is
	// not in the catalog.
	Entry(ctx context.Context, packID int) (*CatalogEntry, error)

	// EntryByOrder returns the entry at the given 1-based position, or nil.
	EntryByOrder(ctx context.Context, order int) (*CatalogEntry, error)

	// Size returns the number of catalog entries.
	Size(ctx context.Context) (int, error)

	// List returns all entries in catalog order.
	List(ctx context.Context) ([]CatalogEntry, error)
}

// BankRepo reads the question bank.
type BankRepo interface {
	// Pack returns quizpack metadata, or nil if the pack doesn't exist.
	Pack(ctx context.Context, packID int) (*PackInfo, error)

	// Questions returns the pack's questions with choices, in display order.
	Questions(ctx context.Context, packID int) ([]Question, error)
}

// StatsRepo manages community aggregate rows.
type StatsRepo interface {
	// Get returns the stats row for packID, or nil if none exists yet.
	Get(ctx context.Context, packID int) (*PackStatsData, error)

	// Save upserts the stats row keyed by QuizpackID.
	Save(ctx context.Context, data *PackStatsData) error
}
