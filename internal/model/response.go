package model

import "time"

// SurveyResponse is one respondent's full submission against a survey,
// mapping question ids to answer values. Responses are immutable once
// stored and reference their survey by id only; deleting a survey leaves
// its responses orphaned.
type SurveyResponse struct {
	ID          string                 `json:"id" bson:"id"`
	SurveyID    string                 `json:"survey_id" bson:"survey_id"`
	Responses   map[string]AnswerValue `json:"responses" bson:"responses"`
	SubmittedAt time.Time              `json:"submitted_at" bson:"submitted_at"`
}
