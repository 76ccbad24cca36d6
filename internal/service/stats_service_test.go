package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surveyhub/internal/model"
	"surveyhub/internal/repository"
)

// MockResponseRepo is a mock type for the ResponseRepo interface
type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Insert(ctx context.Context, response *model.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepo) ListBySurvey(ctx context.Context, surveyID string, opts repository.ListOptions) ([]*model.SurveyResponse, error) {
	args := m.Called(ctx, surveyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SurveyResponse), args.Error(1)
}

func (m *MockResponseRepo) AllBySurvey(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SurveyResponse), args.Error(1)
}

func (m *MockResponseRepo) CountBySurvey(ctx context.Context, surveyID string) (int64, error) {
	args := m.Called(ctx, surveyID)
	return args.Get(0).(int64), args.Error(1)
}

func ratingSurvey() *model.Survey {
	return &model.Survey{
		ID:    "s1",
		Title: "Service Quality",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeRating, Title: "Rate us", MinRating: intp(1), MaxRating: intp(5)},
		},
	}
}

func responsesFor(questionID string, values ...model.AnswerValue) []*model.SurveyResponse {
	out := make([]*model.SurveyResponse, 0, len(values))
	for _, v := range values {
		out = append(out, &model.SurveyResponse{
			SurveyID:  "s1",
			Responses: map[string]model.AnswerValue{questionID: v},
		})
	}
	return out
}

func newStatsFixture(survey *model.Survey, responses []*model.SurveyResponse) *StatsService {
	surveyRepo := new(MockSurveyRepo)
	responseRepo := new(MockResponseRepo)
	surveyRepo.On("GetByID", mock.Anything, survey.ID).Return(survey, nil)
	responseRepo.On("CountBySurvey", mock.Anything, survey.ID).Return(int64(len(responses)), nil)
	responseRepo.On("AllBySurvey", mock.Anything, survey.ID).Return(responses, nil)
	return NewStatsService(surveyRepo, responseRepo)
}

func TestComputeStats_RatingAverage(t *testing.T) {
	svc := newStatsFixture(ratingSurvey(), responsesFor("q1",
		model.NumberAnswer(5),
		model.NumberAnswer(4),
		model.NumberAnswer(3),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalResponses)
	assert.Equal(t, "Service Quality", stats.SurveyTitle)

	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 3, qs.AnsweredCount)
	assert.Equal(t, 100.0, qs.CompletionRate)
	assert.NotNil(t, qs.AverageRating)
	assert.Equal(t, 4.0, *qs.AverageRating)
	assert.Empty(t, qs.OptionDistribution)
}

func TestComputeStats_NonNumericRatingExcluded(t *testing.T) {
	svc := newStatsFixture(ratingSurvey(), responsesFor("q1",
		model.NumberAnswer(4),
		model.TextAnswer("five"),
		model.NumberAnswer(2),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 3, qs.AnsweredCount)
	assert.NotNil(t, qs.AverageRating)
	assert.Equal(t, 3.0, *qs.AverageRating)
}

func TestComputeStats_AllRatingsNonNumeric(t *testing.T) {
	svc := newStatsFixture(ratingSurvey(), responsesFor("q1",
		model.TextAnswer("good"),
		model.TextAnswer("bad"),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Nil(t, stats.QuestionStats["q1"].AverageRating)
}

func TestComputeStats_OptionDistribution(t *testing.T) {
	survey := &model.Survey{
		ID:    "s1",
		Title: "Channels",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeMultipleChoice, Title: "How did you hear about us?"},
		},
	}
	svc := newStatsFixture(survey, responsesFor("q1",
		model.TextAnswer("a"),
		model.TextAnswer("a"),
		model.TextAnswer("b"),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, qs.OptionDistribution)
	assert.Nil(t, qs.AverageRating)
}

func TestComputeStats_EmptyTextSkippedInDistribution(t *testing.T) {
	survey := &model.Survey{
		ID:        "s1",
		Title:     "Channels",
		Questions: []model.Question{{ID: "q1", Type: model.QuestionTypeMultipleChoice, Title: "Pick one"}},
	}
	svc := newStatsFixture(survey, responsesFor("q1",
		model.TextAnswer("a"),
		model.TextAnswer(""),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 2, qs.AnsweredCount)
	assert.Equal(t, map[string]int{"a": 1}, qs.OptionDistribution)
}

func TestComputeStats_CheckboxGetsNoDistribution(t *testing.T) {
	survey := &model.Survey{
		ID:        "s1",
		Title:     "Benefits",
		Questions: []model.Question{{ID: "q1", Type: model.QuestionTypeCheckbox, Title: "Pick any"}},
	}
	svc := newStatsFixture(survey, responsesFor("q1",
		model.MultiSelectAnswer("health_insurance", "remote_work"),
		model.MultiSelectAnswer("remote_work"),
	))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 2, qs.AnsweredCount)
	assert.Equal(t, 100.0, qs.CompletionRate)
	assert.Empty(t, qs.OptionDistribution)
}

func TestComputeStats_NoResponses(t *testing.T) {
	svc := newStatsFixture(ratingSurvey(), nil)

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalResponses)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 0, qs.AnsweredCount)
	assert.Equal(t, 0.0, qs.CompletionRate)
	assert.Nil(t, qs.AverageRating)
}

func TestComputeStats_MissingAndInvalidAnswersNotCounted(t *testing.T) {
	survey := &model.Survey{
		ID:    "s1",
		Title: "Mixed",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeText, Title: "Comments"},
		},
	}
	responses := []*model.SurveyResponse{
		{SurveyID: "s1", Responses: map[string]model.AnswerValue{"q1": model.TextAnswer("fine")}},
		{SurveyID: "s1", Responses: map[string]model.AnswerValue{"other": model.TextAnswer("x")}},
		{SurveyID: "s1", Responses: map[string]model.AnswerValue{"q1": {}}}, // undecodable payload
	}
	svc := newStatsFixture(survey, responses)

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 1, qs.AnsweredCount)
	assert.InDelta(t, 100.0/3, qs.CompletionRate, 1e-9)
}

func TestComputeStats_UnknownQuestionType(t *testing.T) {
	survey := &model.Survey{
		ID:        "s1",
		Title:     "Odd",
		Questions: []model.Question{{ID: "q1", Type: "slider", Title: "Slide it"}},
	}
	svc := newStatsFixture(survey, responsesFor("q1", model.NumberAnswer(7)))

	stats, err := svc.ComputeStats(context.Background(), "s1")

	assert.NoError(t, err)
	qs := stats.QuestionStats["q1"]
	assert.Equal(t, 1, qs.AnsweredCount)
	assert.Empty(t, qs.OptionDistribution)
	assert.Nil(t, qs.AverageRating)
}

func TestComputeStats_SurveyNotFound(t *testing.T) {
	surveyRepo := new(MockSurveyRepo)
	responseRepo := new(MockResponseRepo)
	surveyRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)
	svc := NewStatsService(surveyRepo, responseRepo)

	stats, err := svc.ComputeStats(context.Background(), "missing")

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}
