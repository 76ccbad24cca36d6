package service

import (
	"context"

	"github.com/google/uuid"

	"surveyhub/internal/model"
	"surveyhub/internal/repository"
)

// ResponseService handles response submission and paginated retrieval.
type ResponseService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
	}
}

// Submit validates that the referenced survey exists, then persists the
// submission. Answer values are stored verbatim; their shapes are not
// checked against the survey's question types.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, answers map[string]model.AnswerValue) (*model.SurveyResponse, error) {
	exists, err := s.surveyRepo.Exists(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrSurveyNotFound
	}

	response := &model.SurveyResponse{
		ID:        uuid.NewString(),
		SurveyID:  surveyID,
		Responses: answers,
	}

	if err := s.responseRepo.Insert(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// List retrieves one page of a survey's responses, sorted by the named
// field. Pagination bounds are caller-controlled.
func (s *ResponseService) List(ctx context.Context, surveyID string, opts repository.ListOptions) ([]*model.SurveyResponse, error) {
	responses, err := s.responseRepo.ListBySurvey(ctx, surveyID, opts)
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*model.SurveyResponse{}
	}
	return responses, nil
}
