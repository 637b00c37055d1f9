package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	domainrepos "github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
)

// FileDocumentStore writes rendered reports to a directory on disk.
type FileDocumentStore struct {
	dir string
}

func NewFileDocumentStore(dir string) domainrepos.DocumentStore {
	return &FileDocumentStore{dir: dir}
}

func (s *FileDocumentStore) Save(document string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	name := fmt.Sprintf("hair_report_%s.html", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

func (s *FileDocumentStore) SaveTo(path string, document string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
