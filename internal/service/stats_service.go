package service

import (
	"context"

	"surveyhub/internal/model"
	"surveyhub/internal/repository"
)

// StatsService computes per-question summary statistics for a survey.
type StatsService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
}

// NewStatsService creates a new stats service
func NewStatsService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo) *StatsService {
	return &StatsService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// ComputeStats builds the per-question summary for one survey in a single
// pass over its fully materialized response set. Nothing is cached or
// pre-aggregated in the store; every call recomputes from scratch.
//
// An answer counts as answered when its question id is present in the
// submission with a decodable value. Malformed answer shapes never fail
// the computation: they count as unanswered, and non-numeric values on
// rating questions are excluded from the average. Option distributions
// cover multiple_choice questions only; checkbox answers are multi-select
// and keep an empty distribution. Completion rate ignores the required
// flag entirely.
func (s *StatsService) ComputeStats(ctx context.Context, surveyID string) (*model.SurveyStats, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	total, err := s.responseRepo.CountBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.AllBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	questionStats := make(map[string]model.QuestionStats, len(survey.Questions))
	for _, q := range survey.Questions {
		answered := make([]model.AnswerValue, 0, len(responses))
		for _, response := range responses {
			v, ok := response.Responses[q.ID]
			if !ok || v.Kind == model.AnswerInvalid {
				continue
			}
			answered = append(answered, v)
		}

		completionRate := 0.0
		if total > 0 {
			completionRate = float64(len(answered)) / float64(total) * 100
		}

		distribution := map[string]int{}
		if q.Type == model.QuestionTypeMultipleChoice {
			for _, v := range answered {
				if v.Kind == model.AnswerText && v.Text != "" {
					distribution[v.Text]++
				}
			}
		}

		var averageRating *float64
		if q.Type == model.QuestionTypeRating {
			sum := 0.0
			numeric := 0
			for _, v := range answered {
				if v.Kind == model.AnswerNumber {
					sum += v.Number
					numeric++
				}
			}
			if numeric > 0 {
				avg := sum / float64(numeric)
				averageRating = &avg
			}
		}

		questionStats[q.ID] = model.QuestionStats{
			QuestionTitle:      q.Title,
			QuestionType:       q.Type,
			AnsweredCount:      len(answered),
			CompletionRate:     completionRate,
			OptionDistribution: distribution,
			AverageRating:      averageRating,
		}
	}

	return &model.SurveyStats{
		TotalResponses: total,
		SurveyTitle:    survey.Title,
		QuestionStats:  questionStats,
	}, nil
}
