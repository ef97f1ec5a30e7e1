package level

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

func TestLevelService_GetCacheHit(t *testing.T) {
	repo := &RepositoryMock{}
	cache := &DocumentCacheMock{}
	service := NewLevelService(repo, cache, nil, nil)

	cached := &Document{LevelNumber: 4}
	cache.On("Get", 4).Return(cached, nil)

	doc, err := service.Get(4)
	assert.NoError(t, err)
	assert.Equal(t, cached, doc)
	repo.AssertNotCalled(t, "Load", mock.Anything)
	cache.AssertExpectations(t)
}

func TestLevelService_GetCacheMissLoadsAndCaches(t *testing.T) {
	repo := &RepositoryMock{}
	cache := &DocumentCacheMock{}
	service := NewLevelService(repo, cache, nil, nil)

	lvl, _ := ParseBlueprint(6, make([]byte, BlueprintSize), nil)
	cache.On("Get", 6).Return(nil, nil)
	repo.On("Load", 6).Return(lvl, nil)
	cache.On("Put", 6, mock.AnythingOfType("*level.Document")).Return(nil)

	doc, err := service.Get(6)
	assert.NoError(t, err)
	assert.Equal(t, 6, doc.LevelNumber)
	assert.Len(t, doc.Rooms, TotalRooms)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestLevelService_GetNegativeNumber(t *testing.T) {
	service := NewLevelService(&RepositoryMock{}, nil, nil, nil)

	_, err := service.Get(-1)
	assert.Error(t, err)
}

func TestLevelService_GetPropagatesNotFound(t *testing.T) {
	repo := &RepositoryMock{}
	service := NewLevelService(repo, nil, nil, nil)

	repo.On("Load", 9).Return(nil, apperrors.NewNotFoundError("no source for level 9", nil))

	_, err := service.Get(9)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestLevelService_SaveFlow(t *testing.T) {
	repo := &RepositoryMock{}
	cache := &DocumentCacheMock{}
	revisions := &RevisionStoreMock{}
	notifier := &NotifierMock{}
	service := NewLevelService(repo, cache, revisions, notifier)

	lvl, _ := ParseBlueprint(2, make([]byte, BlueprintSize), nil)
	doc := ExportDocument(lvl)

	repo.On("DocumentPath", 2).Return("json/level_02.json")
	repo.On("Export", mock.AnythingOfType("*level.Level"), "json/level_02.json").Return(nil)
	revisions.On("SaveRevision", 2, "alice", mock.AnythingOfType("[]uint8")).Return("rev-1", nil)
	cache.On("Invalidate", 2).Return(nil)
	notifier.On("LevelUpdated", 2, "alice").Return()

	err := service.Save(doc, "alice")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	revisions.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestLevelService_SaveRejectsInvalidDocument(t *testing.T) {
	repo := &RepositoryMock{}
	notifier := &NotifierMock{}
	service := NewLevelService(repo, nil, nil, notifier)

	doc := &Document{LevelNumber: 1} // no rooms

	err := service.Save(doc, "bob")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
	repo.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "LevelUpdated", mock.Anything, mock.Anything)
}

func TestLevelService_GetBinaryRoundTrip(t *testing.T) {
	repo := &RepositoryMock{}
	service := NewLevelService(repo, nil, nil, nil)

	buf := make([]byte, BlueprintSize)
	for i := 0; i < 720; i++ {
		buf[i] = uint8(i) & 0x1F
	}
	lvl, _ := ParseBlueprint(3, buf, nil)
	repo.On("Load", 3).Return(lvl, nil)

	out, err := service.GetBinary(3)
	assert.NoError(t, err)
	assert.Len(t, out, BlueprintSize)
	assert.Equal(t, buf[:720], out[:720])
}

func TestLevelService_ListSkipsMissingLevels(t *testing.T) {
	repo := &RepositoryMock{}
	service := NewLevelService(repo, nil, nil, nil)

	lvl, _ := ParseBlueprint(0, make([]byte, BlueprintSize), nil)
	repo.On("Load", 0).Return(lvl, nil)
	for n := 1; n < ReferenceLevels; n++ {
		repo.On("Load", n).Return(nil, apperrors.NewNotFoundError("missing", nil))
	}

	summaries, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].LevelNumber)
	assert.Equal(t, MaxGuards, summaries[0].ActiveGuards)
}

func TestLevelService_ListAbortsOnIOError(t *testing.T) {
	repo := &RepositoryMock{}
	service := NewLevelService(repo, nil, nil, nil)

	repo.On("Load", 0).Return(nil, apperrors.NewIOError("disk gone", errors.New("io")))

	_, err := service.List()
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindIO))
}
