package model

// QuestionStats summarizes the collected answers for a single question.
// OptionDistribution is populated for multiple_choice questions only and
// AverageRating for rating questions only; both stay at their zero value
// for every other question type.
type QuestionStats struct {
	QuestionTitle      string         `json:"question_title"`
	QuestionType       QuestionType   `json:"question_type"`
	AnsweredCount      int            `json:"answered_count"`
	CompletionRate     float64        `json:"completion_rate"`
	OptionDistribution map[string]int `json:"option_distribution"`
	AverageRating      *float64       `json:"average_rating"`
}

// SurveyStats is the aggregate summary for one survey across its full
// response set, keyed by question id.
type SurveyStats struct {
	TotalResponses int64                    `json:"total_responses"`
	SurveyTitle    string                   `json:"survey_title"`
	QuestionStats  map[string]QuestionStats `json:"question_stats"`
}
