package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveyhub/internal/model"
)

// ListOptions control pagination and ordering of response listings. SortBy
// is passed to the store as-is; a field that does not exist degrades to the
// store's own behavior rather than erroring.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ResponseRepo handles MongoDB operations for survey response documents.
type ResponseRepo interface {
	Insert(ctx context.Context, response *model.SurveyResponse) error
	ListBySurvey(ctx context.Context, surveyID string, opts ListOptions) ([]*model.SurveyResponse, error)
	AllBySurvey(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error)
	CountBySurvey(ctx context.Context, surveyID string) (int64, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Insert(ctx context.Context, response *model.SurveyResponse) error {
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, response)
	return err
}

func (r *responseRepo) ListBySurvey(ctx context.Context, surveyID string, opts ListOptions) ([]*model.SurveyResponse, error) {
	direction := 1
	if opts.SortOrder == "desc" {
		direction = -1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: opts.SortBy, Value: direction}}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := r.collection.Find(ctx, bson.M{"survey_id": surveyID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.SurveyResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// AllBySurvey materializes the full response set of a survey, for the
// statistics aggregation which recomputes from scratch on every call.
func (r *responseRepo) AllBySurvey(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"survey_id": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.SurveyResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) CountBySurvey(ctx context.Context, surveyID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"survey_id": surveyID})
}
