package level

import (
	"github.com/stretchr/testify/mock"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Load(levelNumber int) (*Level, error) {
	args := m.Called(levelNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Level), args.Error(1)
}

func (m *RepositoryMock) Export(lvl *Level, path string) error {
	args := m.Called(lvl, path)
	return args.Error(0)
}

func (m *RepositoryMock) DocumentPath(levelNumber int) string {
	args := m.Called(levelNumber)
	return args.String(0)
}

type DocumentCacheMock struct {
	mock.Mock
}

func (m *DocumentCacheMock) Get(levelNumber int) (*Document, error) {
	args := m.Called(levelNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *DocumentCacheMock) Put(levelNumber int, doc *Document) error {
	args := m.Called(levelNumber, doc)
	return args.Error(0)
}

func (m *DocumentCacheMock) Invalidate(levelNumber int) error {
	args := m.Called(levelNumber)
	return args.Error(0)
}

type RevisionStoreMock struct {
	mock.Mock
}

func (m *RevisionStoreMock) SaveRevision(levelNumber int, author string, document []byte) (string, error) {
	args := m.Called(levelNumber, author, document)
	return args.String(0), args.Error(1)
}

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) LevelUpdated(levelNumber int, updatedBy string) {
	m.Called(levelNumber, updatedBy)
}
