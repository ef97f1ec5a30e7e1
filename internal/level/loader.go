package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

// FileLoader reads levels from disk. It is configured with two roots:
// one holding the original binary sources (files named LEVELn) and one
// holding interchange documents (level_NN.json). A loader holds no
// per-load state and may be shared between callers.
type FileLoader struct {
	LevelsDir string
	DocsDir   string

	Resolver AdjacencyResolver
}

func NewFileLoader(levelsDir, docsDir string) *FileLoader {
	return &FileLoader{
		LevelsDir: levelsDir,
		DocsDir:   docsDir,
		Resolver:  GridAdjacency{},
	}
}

// DocumentPath returns the interchange document path for a level number.
func (l *FileLoader) DocumentPath(levelNumber int) string {
	return filepath.Join(l.DocsDir, fmt.Sprintf("level_%02d.json", levelNumber))
}

// BinaryPath returns the raw blueprint path for a level number.
func (l *FileLoader) BinaryPath(levelNumber int) string {
	return filepath.Join(l.LevelsDir, fmt.Sprintf("LEVEL%d", levelNumber))
}

// Load reads one level: the interchange document wins when present,
// otherwise the raw binary source is decoded. A missing level is a
// NotFoundError; a binary source with the wrong length is a FormatError
// and is never partially parsed.
func (l *FileLoader) Load(levelNumber int) (*Level, error) {
	docPath := l.DocumentPath(levelNumber)
	if _, err := os.Stat(docPath); err == nil {
		return l.loadDocument(docPath)
	}

	binPath := l.BinaryPath(levelNumber)
	data, err := os.ReadFile(binPath)
	if os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("no source for level %d", levelNumber), err)
	} else if err != nil {
		return nil, apperrors.NewIOError(
			fmt.Sprintf("error reading level file %s", binPath), err)
	}

	return ParseBlueprint(levelNumber, data, l.Resolver)
}

func (l *FileLoader) loadDocument(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIOError(
			fmt.Sprintf("error reading level document %s", path), err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewFormatError(
			fmt.Sprintf("malformed level document %s", path), err)
	}

	return ImportDocument(&doc)
}

// Export writes the interchange document for a level, creating parent
// directories as needed.
func (l *FileLoader) Export(lvl *Level, path string) error {
	doc := ExportDocument(lvl)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewIOError("error serializing level document", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.NewIOError(
			fmt.Sprintf("error creating directory for %s", path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.NewIOError(
			fmt.Sprintf("error writing level document %s", path), err)
	}
	return nil
}
