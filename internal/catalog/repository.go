package catalog

import (
	"github.com/google/uuid"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveRevision appends a new revision of a level document and returns
// its id. Implements level.RevisionStore.
func (s *Store) SaveRevision(levelNumber int, author string, document []byte) (string, error) {
	rev := Revision{
		ID:          uuid.New().String(),
		LevelNumber: levelNumber,
		Author:      author,
		Document:    document,
	}
	if err := s.db.Create(&rev).Error; err != nil {
		return "", apperrors.NewAppError(500, "Error saving level revision", err)
	}
	return rev.ID, nil
}

// ListRevisions returns the revision history of a level, newest first.
func (s *Store) ListRevisions(levelNumber int) ([]RevisionSummary, error) {
	var revs []Revision
	result := s.db.Where("level_number = ?", levelNumber).
		Order("created_at desc").Find(&revs)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error listing level revisions", result.Error)
	}

	summaries := make([]RevisionSummary, 0, len(revs))
	for _, r := range revs {
		summaries = append(summaries, RevisionSummary{
			ID:          r.ID,
			LevelNumber: r.LevelNumber,
			Author:      r.Author,
			CreatedAt:   r.CreatedAt,
		})
	}
	return summaries, nil
}

// GetRevision returns one revision's document body.
func (s *Store) GetRevision(id string) ([]byte, error) {
	var rev Revision
	result := s.db.Where("id = ?", id).First(&rev)
	if result.Error == gorm.ErrRecordNotFound {
		return nil, apperrors.NewNotFoundError("Revision not found", result.Error)
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting level revision", result.Error)
	}
	return rev.Document, nil
}
