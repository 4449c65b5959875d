// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogEntriesColumns holds the columns for the "catalog_entries" table.
	CatalogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "catalog_order", Type: field.TypeInt, Unique: true},
		{Name: "quizpack_id", Type: field.TypeInt, Unique: true},
	}
	// CatalogEntriesTable holds the schema information for the "catalog_entries" table.
	CatalogEntriesTable = &schema.Table{
		Name:       "catalog_entries",
		Columns:    CatalogEntriesColumns,
		PrimaryKey: []*schema.Column{CatalogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "catalogentry_catalog_order",
				Unique:  false,
				Columns: []*schema.Column{CatalogEntriesColumns[1]},
			},
		},
	}
	// ChoicesColumns holds the columns for the "choices" table.
	ChoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "choice_order", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "blank_position", Type: field.TypeInt, Nullable: true},
	}
	// ChoicesTable holds the schema information for the "choices" table.
	ChoicesTable = &schema.Table{
		Name:       "choices",
		Columns:    ChoicesColumns,
		PrimaryKey: []*schema.Column{ChoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "choice_question_id",
				Unique:  false,
				Columns: []*schema.Column{ChoicesColumns[1]},
			},
		},
	}
	// PackStatsColumns holds the columns for the "pack_stats" table.
	PackStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quizpack_id", Type: field.TypeInt, Unique: true},
		{Name: "total_completions", Type: field.TypeInt, Default: 0},
		{Name: "total_correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_question_count", Type: field.TypeInt, Default: 0},
		{Name: "average_correct_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "rating_sum", Type: field.TypeInt, Default: 0},
		{Name: "rating_count", Type: field.TypeInt, Default: 0},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
	}
	// PackStatsTable holds the schema information for the "pack_stats" table.
	PackStatsTable = &schema.Table{
		Name:       "pack_stats",
		Columns:    PackStatsColumns,
		PrimaryKey: []*schema.Column{PackStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "packstats_quizpack_id",
				Unique:  false,
				Columns: []*schema.Column{PackStatsColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quizpack_id", Type: field.TypeInt},
		{Name: "question_order", Type: field.TypeInt},
		{Name: "type", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "passage", Type: field.TypeString, Nullable: true},
		{Name: "hint", Type: field.TypeString, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "blank_count", Type: field.TypeInt, Default: 0},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_quizpack_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_quizpack_id_question_order",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
		},
	}
	// QuizpacksColumns holds the columns for the "quizpacks" table.
	QuizpacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "keywords", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// QuizpacksTable holds the schema information for the "quizpacks" table.
	QuizpacksTable = &schema.Table{
		Name:       "quizpacks",
		Columns:    QuizpacksColumns,
		PrimaryKey: []*schema.Column{QuizpacksColumns[0]},
	}
	// UserQuizAnswersColumns holds the columns for the "user_quiz_answers" table.
	UserQuizAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_quizpack_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "answer_order", Type: field.TypeInt},
		{Name: "selected", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeBool},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// UserQuizAnswersTable holds the schema information for the "user_quiz_answers" table.
	UserQuizAnswersTable = &schema.Table{
		Name:       "user_quiz_answers",
		Columns:    UserQuizAnswersColumns,
		PrimaryKey: []*schema.Column{UserQuizAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userquizanswer_user_quizpack_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{UserQuizAnswersColumns[1], UserQuizAnswersColumns[2]},
			},
			{
				Name:    "userquizanswer_user_quizpack_id",
				Unique:  false,
				Columns: []*schema.Column{UserQuizAnswersColumns[1]},
			},
		},
	}
	// UserQuizpacksColumns holds the columns for the "user_quizpacks" table.
	UserQuizpacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "quizpack_id", Type: field.TypeInt},
		{Name: "catalog_order", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "current_question_order", Type: field.TypeInt, Default: 0},
		{Name: "solved_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_question_count", Type: field.TypeInt, Default: 0},
		{Name: "session_number", Type: field.TypeInt, Default: 0},
		{Name: "attempt_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_played_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_time_seconds", Type: field.TypeInt, Default: 0},
	}
	// UserQuizpacksTable holds the schema information for the "user_quizpacks" table.
	UserQuizpacksTable = &schema.Table{
		Name:       "user_quizpacks",
		Columns:    UserQuizpacksColumns,
		PrimaryKey: []*schema.Column{UserQuizpacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userquizpack_user_id_quizpack_id",
				Unique:  true,
				Columns: []*schema.Column{UserQuizpacksColumns[1], UserQuizpacksColumns[2]},
			},
			{
				Name:    "userquizpack_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{UserQuizpacksColumns[1], UserQuizpacksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogEntriesTable,
		ChoicesTable,
		PackStatsTable,
		QuestionsTable,
		QuizpacksTable,
		UserQuizAnswersTable,
		UserQuizpacksTable,
	}
)

func init() {
}
