// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/hanjihoon73/lawquiz/ent/choice"
	"github.com/hanjihoon73/lawquiz/ent/packstats"
	"github.com/hanjihoon73/lawquiz/ent/question"
	"github.com/hanjihoon73/lawquiz/ent/quizpack"
	"github.com/hanjihoon73/lawquiz/ent/schema"
	"github.com/hanjihoon73/lawquiz/ent/userquizpack"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	choiceFields := schema.Choice{}.Fields()
	_ = choiceFields
	// choiceDescText is the schema descriptor for text field.
	choiceDescText := choiceFields[2].Descriptor()
	// choice.TextValidator is a validator for the "text" field. It is called by the builders before save.
	choice.TextValidator = choiceDescText.Validators[0].(func(string) error)
	// choiceDescCorrect is the schema descriptor for correct field.
	choiceDescCorrect := choiceFields[3].Descriptor()
	// choice.DefaultCorrect holds the default value on creation for the correct field.
	choice.DefaultCorrect = choiceDescCorrect.Default.(bool)
	packstatsFields := schema.PackStats{}.Fields()
	_ = packstatsFields
	// packstatsDescTotalCompletions is the schema descriptor for total_completions field.
	packstatsDescTotalCompletions := packstatsFields[1].Descriptor()
	// packstats.DefaultTotalCompletions holds the default value on creation for the total_completions field.
	packstats.DefaultTotalCompletions = packstatsDescTotalCompletions.Default.(int)
	// packstatsDescTotalCorrectCount is the schema descriptor for total_correct_count field.
	packstatsDescTotalCorrectCount := packstatsFields[2].Descriptor()
	// packstats.DefaultTotalCorrectCount holds the default value on creation for the total_correct_count field.
	packstats.DefaultTotalCorrectCount = packstatsDescTotalCorrectCount.Default.(int)
	// packstatsDescTotalQuestionCount is the schema descriptor for total_question_count field.
	packstatsDescTotalQuestionCount := packstatsFields[3].Descriptor()
	// packstats.DefaultTotalQuestionCount holds the default value on creation for the total_question_count field.
	packstats.DefaultTotalQuestionCount = packstatsDescTotalQuestionCount.Default.(int)
	// packstatsDescAverageCorrectRate is the schema descriptor for average_correct_rate field.
	packstatsDescAverageCorrectRate := packstatsFields[4].Descriptor()
	// packstats.DefaultAverageCorrectRate holds the default value on creation for the average_correct_rate field.
	packstats.DefaultAverageCorrectRate = packstatsDescAverageCorrectRate.Default.(float64)
	// packstatsDescRatingSum is the schema descriptor for rating_sum field.
	packstatsDescRatingSum := packstatsFields[5].Descriptor()
	// packstats.DefaultRatingSum holds the default value on creation for the rating_sum field.
	packstats.DefaultRatingSum = packstatsDescRatingSum.Default.(int)
	// packstatsDescRatingCount is the schema descriptor for rating_count field.
	packstatsDescRatingCount := packstatsFields[6].Descriptor()
	// packstats.DefaultRatingCount holds the default value on creation for the rating_count field.
	packstats.DefaultRatingCount = packstatsDescRatingCount.Default.(int)
	// packstatsDescAverageRating is the schema descriptor for average_rating field.
	packstatsDescAverageRating := packstatsFields[7].Descriptor()
	// packstats.DefaultAverageRating holds the default value on creation for the average_rating field.
	packstats.DefaultAverageRating = packstatsDescAverageRating.Default.(float64)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescType is the schema descriptor for type field.
	questionDescType := questionFields[2].Descriptor()
	// question.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	question.TypeValidator = questionDescType.Validators[0].(func(string) error)
	// questionDescQuestion is the schema descriptor for question field.
	questionDescQuestion := questionFields[3].Descriptor()
	// question.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	question.QuestionValidator = questionDescQuestion.Validators[0].(func(string) error)
	// questionDescBlankCount is the schema descriptor for blank_count field.
	questionDescBlankCount := questionFields[7].Descriptor()
	// question.DefaultBlankCount holds the default value on creation for the blank_count field.
	question.DefaultBlankCount = questionDescBlankCount.Default.(int)
	quizpackFields := schema.Quizpack{}.Fields()
	_ = quizpackFields
	// quizpackDescKeywords is the schema descriptor for keywords field.
	quizpackDescKeywords := quizpackFields[0].Descriptor()
	// quizpack.KeywordsValidator is a validator for the "keywords" field. It is called by the builders before save.
	quizpack.KeywordsValidator = quizpackDescKeywords.Validators[0].(func(string) error)
	// quizpackDescQuestionCount is the schema descriptor for question_count field.
	quizpackDescQuestionCount := quizpackFields[1].Descriptor()
	// quizpack.DefaultQuestionCount holds the default value on creation for the question_count field.
	quizpack.DefaultQuestionCount = quizpackDescQuestionCount.Default.(int)
	// quizpackDescActive is the schema descriptor for active field.
	quizpackDescActive := quizpackFields[2].Descriptor()
	// quizpack.DefaultActive holds the default value on creation for the active field.
	quizpack.DefaultActive = quizpackDescActive.Default.(bool)
	userquizpackFields := schema.UserQuizpack{}.Fields()
	_ = userquizpackFields
	// userquizpackDescUserID is the schema descriptor for user_id field.
	userquizpackDescUserID := userquizpackFields[0].Descriptor()
	// userquizpack.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userquizpack.UserIDValidator = userquizpackDescUserID.Validators[0].(func(string) error)
	// userquizpackDescStatus is the schema descriptor for status field.
	userquizpackDescStatus := userquizpackFields[3].Descriptor()
	// userquizpack.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	userquizpack.StatusValidator = userquizpackDescStatus.Validators[0].(func(string) error)
	// userquizpackDescCurrentQuestionOrder is the schema descriptor for current_question_order field.
	userquizpackDescCurrentQuestionOrder := userquizpackFields[4].Descriptor()
	// userquizpack.DefaultCurrentQuestionOrder holds the default value on creation for the current_question_order field.
	userquizpack.DefaultCurrentQuestionOrder = userquizpackDescCurrentQuestionOrder.Default.(int)
	// userquizpackDescSolvedCount is the schema descriptor for solved_count field.
	userquizpackDescSolvedCount := userquizpackFields[5].Descriptor()
	// userquizpack.DefaultSolvedCount holds the default value on creation for the solved_count field.
	userquizpack.DefaultSolvedCount = userquizpackDescSolvedCount.Default.(int)
	// userquizpackDescCorrectCount is the schema descriptor for correct_count field.
	userquizpackDescCorrectCount := userquizpackFields[6].Descriptor()
	// userquizpack.DefaultCorrectCount holds the default value on creation for the correct_count field.
	userquizpack.DefaultCorrectCount = userquizpackDescCorrectCount.Default.(int)
	// userquizpackDescIncorrectCount is the schema descriptor for incorrect_count field.
	userquizpackDescIncorrectCount := userquizpackFields[7].Descriptor()
	// userquizpack.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	userquizpack.DefaultIncorrectCount = userquizpackDescIncorrectCount.Default.(int)
	// userquizpackDescTotalQuestionCount is the schema descriptor for total_question_count field.
	userquizpackDescTotalQuestionCount := userquizpackFields[9].Descriptor()
	// userquizpack.DefaultTotalQuestionCount holds the default value on creation for the total_question_count field.
	userquizpack.DefaultTotalQuestionCount = userquizpackDescTotalQuestionCount.Default.(int)
	// userquizpackDescSessionNumber is the schema descriptor for session_number field.
	userquizpackDescSessionNumber := userquizpackFields[10].Descriptor()
	// userquizpack.DefaultSessionNumber holds the default value on creation for the session_number field.
	userquizpack.DefaultSessionNumber = userquizpackDescSessionNumber.Default.(int)
	// userquizpackDescTotalTimeSeconds is the schema descriptor for total_time_seconds field.
	userquizpackDescTotalTimeSeconds := userquizpackFields[15].Descriptor()
	// userquizpack.DefaultTotalTimeSeconds holds the default value on creation for the total_time_seconds field.
	userquizpack.DefaultTotalTimeSeconds = userquizpackDescTotalTimeSeconds.Default.(int)
}
