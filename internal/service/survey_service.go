package service

import (
	"context"

	"github.com/google/uuid"

	"surveyhub/internal/cache"
	"surveyhub/internal/model"
	"surveyhub/internal/repository"
)

// SurveyService handles the survey catalog: CRUD over survey definitions,
// template listing and instantiation, and seeding of the default templates.
type SurveyService struct {
	surveyRepo repository.SurveyRepo
	cache      cache.SurveyCache // nil when Redis is not configured
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, surveyCache cache.SurveyCache) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
		cache:      surveyCache,
	}
}

// SurveyInput carries the caller-supplied fields of a survey definition.
// Question types are stored verbatim without checking them against the
// recognized kinds.
type SurveyInput struct {
	Title            string
	Description      string
	Questions        []model.Question
	IsTemplate       bool
	TemplateCategory string
}

// Create persists a new survey, assigning an id and timestamps. Questions
// and options that arrived without an id get a generated one.
func (s *SurveyService) Create(ctx context.Context, in SurveyInput) (*model.Survey, error) {
	survey := &model.Survey{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Description:      in.Description,
		Questions:        withGeneratedIDs(in.Questions),
		IsTemplate:       in.IsTemplate,
		TemplateCategory: in.TemplateCategory,
	}

	if err := s.surveyRepo.Insert(ctx, survey); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, survey)
	return survey, nil
}

// GetByID retrieves a survey by id, consulting the cache first.
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	s.cacheSet(ctx, survey)
	return survey, nil
}

// List retrieves all surveys matching the template flag.
func (s *SurveyService) List(ctx context.Context, isTemplate bool) ([]*model.Survey, error) {
	surveys, err := s.surveyRepo.List(ctx, isTemplate)
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []*model.Survey{}
	}
	return surveys, nil
}

// Update fully replaces the mutable fields of an existing survey and
// returns the stored result. It never creates a survey for an unknown id.
func (s *SurveyService) Update(ctx context.Context, id string, in SurveyInput) (*model.Survey, error) {
	update := &model.Survey{
		Title:            in.Title,
		Description:      in.Description,
		Questions:        withGeneratedIDs(in.Questions),
		IsTemplate:       in.IsTemplate,
		TemplateCategory: in.TemplateCategory,
	}

	matched, err := s.surveyRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrSurveyNotFound
	}

	s.cacheInvalidate(ctx, id)

	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	s.cacheSet(ctx, survey)
	return survey, nil
}

// Delete removes a survey. Responses referencing it are left orphaned.
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	deleted, err := s.surveyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSurveyNotFound
	}

	s.cacheInvalidate(ctx, id)
	return nil
}

// InstantiateFromTemplate deep-copies a template into a new non-template
// survey with the supplied title. Question and option ids are retained
// from the template.
func (s *SurveyService) InstantiateFromTemplate(ctx context.Context, templateID, title string) (*model.Survey, error) {
	tmpl, err := s.surveyRepo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}

	survey := &model.Survey{
		ID:          uuid.NewString(),
		Title:       title,
		Description: tmpl.Description,
		Questions:   cloneQuestions(tmpl.Questions),
		IsTemplate:  false,
	}

	if err := s.surveyRepo.Insert(ctx, survey); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, survey)
	return survey, nil
}

// EnsureSeedTemplates inserts the default templates if no template exists
// yet. The returned bool reports whether anything was created.
func (s *SurveyService) EnsureSeedTemplates(ctx context.Context) (bool, error) {
	count, err := s.surveyRepo.CountTemplates(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, tmpl := range DefaultTemplates() {
		t := tmpl
		if err := s.surveyRepo.Insert(ctx, &t); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *SurveyService) cacheGet(ctx context.Context, id string) *model.Survey {
	if s.cache == nil {
		return nil
	}
	survey, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil
	}
	return survey
}

func (s *SurveyService) cacheSet(ctx context.Context, survey *model.Survey) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, survey)
}

func (s *SurveyService) cacheInvalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, id)
}

// withGeneratedIDs fills in identifiers for questions and options that
// arrived without one. Supplied identifiers are kept as-is.
func withGeneratedIDs(questions []model.Question) []model.Question {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		for j := range questions[i].Options {
			if questions[i].Options[j].ID == "" {
				questions[i].Options[j].ID = uuid.NewString()
			}
		}
	}
	return questions
}

// cloneQuestions deep-copies a question list, keeping all identifiers.
func cloneQuestions(src []model.Question) []model.Question {
	out := make([]model.Question, len(src))
	copy(out, src)
	for i := range out {
		if src[i].Options != nil {
			out[i].Options = append([]model.QuestionOption(nil), src[i].Options...)
		}
		if src[i].MinRating != nil {
			v := *src[i].MinRating
			out[i].MinRating = &v
		}
		if src[i].MaxRating != nil {
			v := *src[i].MaxRating
			out[i].MaxRating = &v
		}
	}
	return out
}
