package model

import "time"

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeRating         QuestionType = "rating"
	QuestionTypeCheckbox       QuestionType = "checkbox"
	QuestionTypeEmail          QuestionType = "email"
	QuestionTypePhone          QuestionType = "phone"
)

// QuestionOption is one selectable choice of a multiple_choice or checkbox
// question. Options are embedded in their question and immutable once stored.
type QuestionOption struct {
	ID    string `json:"id" bson:"id"`
	Text  string `json:"text" bson:"text"`
	Value string `json:"value" bson:"value"`
}

// Question is a single entry of a survey. Order within Survey.Questions is
// significant. The type field is stored verbatim; unrecognized types are
// tolerated downstream and simply get no type-specific statistics.
type Question struct {
	ID          string           `json:"id" bson:"id"`
	Type        QuestionType     `json:"type" bson:"type"`
	Title       string           `json:"title" bson:"title"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Required    bool             `json:"required" bson:"required"`
	Options     []QuestionOption `json:"options,omitempty" bson:"options,omitempty"`
	MinRating   *int             `json:"min_rating,omitempty" bson:"min_rating,omitempty"`
	MaxRating   *int             `json:"max_rating,omitempty" bson:"max_rating,omitempty"`
}

// Survey is a named, ordered collection of questions. Surveys flagged as
// templates are copy sources only and never receive responses directly.
// The id field is an application-generated UUID stored alongside the
// document, not the store's native primary key.
type Survey struct {
	ID               string     `json:"id" bson:"id"`
	Title            string     `json:"title" bson:"title"`
	Description      string     `json:"description,omitempty" bson:"description,omitempty"`
	Questions        []Question `json:"questions" bson:"questions"`
	IsTemplate       bool       `json:"is_template" bson:"is_template"`
	TemplateCategory string     `json:"template_category,omitempty" bson:"template_category,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}
