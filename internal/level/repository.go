package level

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

var ctx = context.Background()

// Repository abstracts where levels come from. FileLoader is the disk
// implementation; tests mock it.
type Repository interface {
	Load(levelNumber int) (*Level, error)
	Export(lvl *Level, path string) error
	DocumentPath(levelNumber int) string
}

// DocumentCache holds decoded interchange documents keyed by level
// number. Get returns (nil, nil) on a miss.
type DocumentCache interface {
	Get(levelNumber int) (*Document, error)
	Put(levelNumber int, doc *Document) error
	Invalidate(levelNumber int) error
}

// RevisionStore persists saved document revisions with authorship.
type RevisionStore interface {
	SaveRevision(levelNumber int, author string, document []byte) (string, error)
}

// Notifier fans a level change out to connected editor clients.
type Notifier interface {
	LevelUpdated(levelNumber int, updatedBy string)
}

func NewRedisDocumentCache(db *redis.Client) *RedisDocumentCache {
	return &RedisDocumentCache{db: db}
}

type RedisDocumentCache struct {
	db *redis.Client
}

func cacheKey(levelNumber int) string {
	return fmt.Sprintf("level:doc:%d", levelNumber)
}

func (c *RedisDocumentCache) Get(levelNumber int) (*Document, error) {
	val, err := c.db.Get(ctx, cacheKey(levelNumber)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting cached level", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling cached level", err)
	}
	return &doc, nil
}

func (c *RedisDocumentCache) Put(levelNumber int, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing level document", err)
	}
	if err := c.db.Set(ctx, cacheKey(levelNumber), data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "Error caching level document", err)
	}
	return nil
}

func (c *RedisDocumentCache) Invalidate(levelNumber int) error {
	if err := c.db.Del(ctx, cacheKey(levelNumber)).Err(); err != nil {
		return apperrors.NewAppError(500, "Error invalidating cached level", err)
	}
	return nil
}
