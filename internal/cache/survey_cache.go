package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"surveyhub/internal/model"
)

// SurveyCache handles Redis caching of survey documents keyed by survey id.
// Only survey definitions are cached; response listings and statistics are
// always computed against the store.
type SurveyCache interface {
	Get(ctx context.Context, id string) (*model.Survey, error)
	Set(ctx context.Context, survey *model.Survey) error
	Invalidate(ctx context.Context, id string) error
}

type surveyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSurveyCache creates a new survey cache
func NewSurveyCache(client *redis.Client) SurveyCache {
	return &surveyCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *surveyCache) key(id string) string {
	return fmt.Sprintf("survey:%s", id)
}

func (c *surveyCache) Get(ctx context.Context, id string) (*model.Survey, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var survey model.Survey
	if err := json.Unmarshal([]byte(data), &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (c *surveyCache) Set(ctx context.Context, survey *model.Survey) error {
	data, err := json.Marshal(survey)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(survey.ID), data, c.ttl).Err()
}

func (c *surveyCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
