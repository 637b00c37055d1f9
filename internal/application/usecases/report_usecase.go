package usecases

import (
	"fmt"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/services"
)

// ReportUseCase assembles the clinical document from a session's stored
// narratives and optionally persists it.
type ReportUseCase struct {
	assembler *services.ReportAssembler
	store     repositories.DocumentStore
}

func NewReportUseCase(store repositories.DocumentStore) *ReportUseCase {
	return &ReportUseCase{
		assembler: services.NewReportAssembler(),
		store:     store,
	}
}

// Preview renders the document without persisting it.
func (uc *ReportUseCase) Preview(session *entities.Session, meta entities.ReportMetadata) (string, error) {
	return uc.assembler.Assemble(session.Analysis(), session.Advice(), meta)
}

// Generate renders the document and writes it under a generated name,
// returning the stored path.
func (uc *ReportUseCase) Generate(session *entities.Session, meta entities.ReportMetadata) (string, error) {
	document, err := uc.assembler.Assemble(session.Analysis(), session.Advice(), meta)
	if err != nil {
		return "", err
	}

	path, err := uc.store.Save(document)
	if err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

// PersistTo renders the document and writes it to an exact caller-chosen path.
func (uc *ReportUseCase) PersistTo(session *entities.Session, meta entities.ReportMetadata, path string) error {
	document, err := uc.assembler.Assemble(session.Analysis(), session.Advice(), meta)
	if err != nil {
		return err
	}

	if err := uc.store.SaveTo(path, document); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
