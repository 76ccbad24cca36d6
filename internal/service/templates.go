package service

import (
	"github.com/google/uuid"

	"surveyhub/internal/model"
)

// DefaultTemplates returns the built-in survey templates seeded by
// EnsureSeedTemplates. The content is fixed, externally observable default
// data; question and option ids are generated fresh per call.
func DefaultTemplates() []model.Survey {
	return []model.Survey{
		{
			ID:               uuid.NewString(),
			Title:            "Customer Feedback Survey",
			Description:      "Collect valuable feedback from your customers",
			IsTemplate:       true,
			TemplateCategory: "Customer Service",
			Questions: []model.Question{
				{
					ID:          uuid.NewString(),
					Type:        model.QuestionTypeRating,
					Title:       "How would you rate our service?",
					Description: "Rate from 1 to 5",
					Required:    true,
					MinRating:   intp(1),
					MaxRating:   intp(5),
				},
				{
					ID:       uuid.NewString(),
					Type:     model.QuestionTypeMultipleChoice,
					Title:    "How did you hear about us?",
					Required: true,
					Options: []model.QuestionOption{
						opt("Social Media", "social_media"),
						opt("Search Engine", "search_engine"),
						opt("Word of Mouth", "word_of_mouth"),
						opt("Advertisement", "advertisement"),
						opt("Other", "other"),
					},
				},
				{
					ID:          uuid.NewString(),
					Type:        model.QuestionTypeText,
					Title:       "What can we improve?",
					Description: "Please share your suggestions",
				},
				{
					ID:          uuid.NewString(),
					Type:        model.QuestionTypeEmail,
					Title:       "Email (optional)",
					Description: "We may contact you for follow-up",
				},
			},
		},
		{
			ID:               uuid.NewString(),
			Title:            "Employee Satisfaction Survey",
			Description:      "Measure employee satisfaction and engagement",
			IsTemplate:       true,
			TemplateCategory: "HR",
			Questions: []model.Question{
				{
					ID:        uuid.NewString(),
					Type:      model.QuestionTypeRating,
					Title:     "How satisfied are you with your current role?",
					Required:  true,
					MinRating: intp(1),
					MaxRating: intp(5),
				},
				{
					ID:       uuid.NewString(),
					Type:     model.QuestionTypeMultipleChoice,
					Title:    "What motivates you most at work?",
					Required: true,
					Options: []model.QuestionOption{
						opt("Career Growth", "career_growth"),
						opt("Compensation", "compensation"),
						opt("Work-Life Balance", "work_life_balance"),
						opt("Team Environment", "team_environment"),
						opt("Recognition", "recognition"),
					},
				},
				{
					ID:    uuid.NewString(),
					Type:  model.QuestionTypeCheckbox,
					Title: "What benefits are most important to you?",
					Options: []model.QuestionOption{
						opt("Health Insurance", "health_insurance"),
						opt("Remote Work", "remote_work"),
						opt("Professional Development", "professional_development"),
						opt("Flexible Hours", "flexible_hours"),
						opt("Retirement Plans", "retirement_plans"),
					},
				},
				{
					ID:    uuid.NewString(),
					Type:  model.QuestionTypeText,
					Title: "Additional comments or suggestions",
				},
			},
		},
		{
			ID:               uuid.NewString(),
			Title:            "Event Feedback Survey",
			Description:      "Gather feedback about your event",
			IsTemplate:       true,
			TemplateCategory: "Events",
			Questions: []model.Question{
				{
					ID:        uuid.NewString(),
					Type:      model.QuestionTypeRating,
					Title:     "How would you rate the overall event?",
					Required:  true,
					MinRating: intp(1),
					MaxRating: intp(5),
				},
				{
					ID:       uuid.NewString(),
					Type:     model.QuestionTypeMultipleChoice,
					Title:    "Which session did you find most valuable?",
					Required: true,
					Options: []model.QuestionOption{
						opt("Opening Keynote", "opening_keynote"),
						opt("Panel Discussion", "panel_discussion"),
						opt("Workshop", "workshop"),
						opt("Networking Session", "networking"),
						opt("Closing Remarks", "closing_remarks"),
					},
				},
				{
					ID:    uuid.NewString(),
					Type:  model.QuestionTypeText,
					Title: "What topics would you like to see in future events?",
				},
				{
					ID:       uuid.NewString(),
					Type:     model.QuestionTypeMultipleChoice,
					Title:    "Would you recommend this event to others?",
					Required: true,
					Options: []model.QuestionOption{
						opt("Definitely", "definitely"),
						opt("Probably", "probably"),
						opt("Maybe", "maybe"),
						opt("Probably Not", "probably_not"),
						opt("Definitely Not", "definitely_not"),
					},
				},
			},
		},
	}
}

func opt(text, value string) model.QuestionOption {
	return model.QuestionOption{ID: uuid.NewString(), Text: text, Value: value}
}

func intp(v int) *int {
	return &v
}
