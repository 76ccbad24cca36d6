package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveyhub/internal/model"
)

// listCap bounds unpaginated survey listings.
const listCap = 1000

// SurveyRepo handles MongoDB operations for survey documents. Documents are
// matched on the application-generated id field, never on _id. Lookups
// return (nil, nil) when no document matches.
type SurveyRepo interface {
	Insert(ctx context.Context, survey *model.Survey) error
	GetByID(ctx context.Context, id string) (*model.Survey, error)
	GetTemplate(ctx context.Context, id string) (*model.Survey, error)
	List(ctx context.Context, isTemplate bool) ([]*model.Survey, error)
	Update(ctx context.Context, id string, survey *model.Survey) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	CountTemplates(ctx context.Context) (int64, error)
}

type surveyRepo struct {
	collection *mongo.Collection
}

// NewSurveyRepo creates a new survey repository
func NewSurveyRepo(db *mongo.Database) SurveyRepo {
	return &surveyRepo{
		collection: db.Collection("surveys"),
	}
}

func (r *surveyRepo) Insert(ctx context.Context, survey *model.Survey) error {
	now := time.Now().UTC()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, survey)
	return err
}

func (r *surveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	var survey model.Survey
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) GetTemplate(ctx context.Context, id string) (*model.Survey, error) {
	var survey model.Survey
	err := r.collection.FindOne(ctx, bson.M{"id": id, "is_template": true}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) List(ctx context.Context, isTemplate bool) ([]*model.Survey, error) {
	opts := options.Find().SetLimit(listCap)
	cursor, err := r.collection.Find(ctx, bson.M{"is_template": isTemplate}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// Update replaces the mutable fields of the matched document and refreshes
// updated_at; id and created_at are preserved. It never upserts. The
// returned bool reports whether a document matched.
func (r *surveyRepo) Update(ctx context.Context, id string, survey *model.Survey) (bool, error) {
	survey.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":             survey.Title,
		"description":       survey.Description,
		"questions":         survey.Questions,
		"is_template":       survey.IsTemplate,
		"template_category": survey.TemplateCategory,
		"updated_at":        survey.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *surveyRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *surveyRepo) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *surveyRepo) CountTemplates(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"is_template": true})
}
