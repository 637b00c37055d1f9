package usecases

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/services"
)

type memoryStore struct {
	saved   string
	savedTo map[string]string
}

func (s *memoryStore) Save(document string) (string, error) {
	s.saved = document
	return "reports/hair_report_test.html", nil
}

func (s *memoryStore) SaveTo(path string, document string) error {
	if s.savedTo == nil {
		s.savedTo = map[string]string{}
	}
	s.savedTo[path] = document
	return nil
}

func TestReportUseCase_Preview(t *testing.T) {
	uc := NewReportUseCase(&memoryStore{})

	t.Run("fails without stored analysis", func(t *testing.T) {
		session := entities.NewSession()
		_, err := uc.Preview(session, entities.ReportMetadata{})
		if !errors.Is(err, services.ErrNothingToReport) {
			t.Errorf("Preview() error = %v, want ErrNothingToReport", err)
		}
	})

	t.Run("renders stored narratives", func(t *testing.T) {
		session := entities.NewSession()
		session.SetAnalysis("- healthy ends")
		session.SetAdvice("Trim every 8 weeks.")

		doc, err := uc.Preview(session, entities.ReportMetadata{PatientName: "Sam"})
		if err != nil {
			t.Fatalf("Preview() error = %v", err)
		}
		if !strings.Contains(doc, "<li>healthy ends</li>") {
			t.Error("Preview should contain rendered analysis")
		}
		if !strings.Contains(doc, "Trim every 8 weeks.") {
			t.Error("Preview should contain the advice narrative")
		}
	})
}

func TestReportUseCase_Generate(t *testing.T) {
	store := &memoryStore{}
	uc := NewReportUseCase(store)

	session := entities.NewSession()
	session.SetAnalysis("findings")

	path, err := uc.Generate(session, entities.ReportMetadata{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != "reports/hair_report_test.html" {
		t.Errorf("Generate() path = %q", path)
	}
	if !strings.Contains(store.saved, "Hair Analysis Findings") {
		t.Error("Stored document should contain the findings section")
	}
}

func TestReportUseCase_PersistTo(t *testing.T) {
	store := &memoryStore{}
	uc := NewReportUseCase(store)

	session := entities.NewSession()
	session.SetAnalysis("findings")

	target := filepath.Join(os.TempDir(), "out.html")
	if err := uc.PersistTo(session, entities.ReportMetadata{}, target); err != nil {
		t.Fatalf("PersistTo() error = %v", err)
	}
	if _, ok := store.savedTo[target]; !ok {
		t.Errorf("PersistTo() should write to %q", target)
	}
}
