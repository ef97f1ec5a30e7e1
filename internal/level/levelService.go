package level

import (
	"encoding/json"
	"log"

	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

// ReferenceLevels is how many levels the reference corpus ships:
// level 0 is the demo, 1..14 the regular levels. The loader itself
// places no upper bound; this only scopes listing.
const ReferenceLevels = 15

type LevelService struct {
	repo      Repository
	cache     DocumentCache
	revisions RevisionStore
	notifier  Notifier
}

func NewLevelService(repo Repository, cache DocumentCache, revisions RevisionStore, notifier Notifier) *LevelService {
	return &LevelService{
		repo:      repo,
		cache:     cache,
		revisions: revisions,
		notifier:  notifier,
	}
}

// Get returns the interchange document for a level, from cache when
// possible. Cache failures are logged and fall through to a fresh load.
func (s *LevelService) Get(levelNumber int) (*Document, error) {
	if levelNumber < 0 {
		return nil, apperrors.NewAppError(400, "Level number must be non-negative", nil)
	}

	if s.cache != nil {
		doc, err := s.cache.Get(levelNumber)
		if err != nil {
			log.Println("Error reading level cache:", err)
		} else if doc != nil {
			return doc, nil
		}
	}

	lvl, err := s.repo.Load(levelNumber)
	if err != nil {
		return nil, err
	}

	doc := ExportDocument(lvl)
	if s.cache != nil {
		if err := s.cache.Put(levelNumber, doc); err != nil {
			log.Println("Error caching level document:", err)
		}
	}
	return doc, nil
}

// GetBinary returns the level re-encoded to its 2304-byte wire form.
func (s *LevelService) GetBinary(levelNumber int) ([]byte, error) {
	doc, err := s.Get(levelNumber)
	if err != nil {
		return nil, err
	}
	lvl, err := ImportDocument(doc)
	if err != nil {
		return nil, err
	}
	return EncodeBlueprint(lvl), nil
}

// Save validates and persists an edited document: the document file is
// rewritten, a revision is recorded, the cache entry is dropped and
// connected editors are notified.
func (s *LevelService) Save(doc *Document, author string) error {
	lvl, err := ImportDocument(doc)
	if err != nil {
		return err
	}

	if err := s.repo.Export(lvl, s.repo.DocumentPath(doc.LevelNumber)); err != nil {
		return err
	}

	if s.revisions != nil {
		data, err := json.Marshal(doc)
		if err != nil {
			return apperrors.NewAppError(500, "Error serializing level document", err)
		}
		if _, err := s.revisions.SaveRevision(doc.LevelNumber, author, data); err != nil {
			return err
		}
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(doc.LevelNumber); err != nil {
			log.Println("Error invalidating level cache:", err)
		}
	}

	if s.notifier != nil {
		s.notifier.LevelUpdated(doc.LevelNumber, author)
	}
	return nil
}

// Export re-exports a loaded level to its document path.
func (s *LevelService) Export(levelNumber int) error {
	lvl, err := s.repo.Load(levelNumber)
	if err != nil {
		return err
	}
	return s.repo.Export(lvl, s.repo.DocumentPath(levelNumber))
}

// Summary is the list-endpoint view of one level.
type Summary struct {
	LevelNumber    int `json:"level_number"`
	ActiveGuards   int `json:"active_guards"`
	KidStartScreen int `json:"kid_start_screen"`
	KidStartBlock  int `json:"kid_start_block"`
}

// List summarizes every level available in the reference range.
// Missing levels are skipped; other failures abort the listing.
func (s *LevelService) List() ([]Summary, error) {
	summaries := []Summary{}
	for n := 0; n < ReferenceLevels; n++ {
		lvl, err := s.repo.Load(n)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, Summary{
			LevelNumber:    lvl.Number,
			ActiveGuards:   lvl.Info.ActiveGuards(),
			KidStartScreen: int(lvl.Info.KidStartScreen),
			KidStartBlock:  int(lvl.Info.KidStartBlock),
		})
	}
	return summaries, nil
}
