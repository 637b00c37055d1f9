package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arunmack789/Hair-Analysis-Report/internal/application/usecases"
	"github.com/arunmack789/Hair-Analysis-Report/internal/config"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/services"
	"github.com/arunmack789/Hair-Analysis-Report/internal/infrastructure/external"
	infrarepos "github.com/arunmack789/Hair-Analysis-Report/internal/infrastructure/repositories"
)

// Command-line front end: analyzes the given photos and optionally writes
// the clinical report to a file.
func main() {
	var images []string
	flag.Func("image", "path to a hair photo (repeat up to 4 times)", func(s string) error {
		images = append(images, s)
		return nil
	})

	var (
		out          = flag.String("out", "", "write the HTML report to this path (empty: print analysis only)")
		budget       = flag.String("budget", "", "budget tier for product advice: low, medium or high")
		concerns     = flag.String("concerns", "", "comma-separated hair concerns, e.g. dry,damaged")
		productTable = flag.Bool("products", false, "ask for a product recommendation table")

		patientName  = flag.String("patient-name", "", "patient name")
		patientID    = flag.String("patient-id", "", "patient identifier")
		dateOfBirth  = flag.String("dob", "", "patient date of birth (YYYY-MM-DD)")
		gender       = flag.String("gender", "", "patient gender")
		hospitalName = flag.String("hospital", "", "hospital or clinic name")
		doctorName   = flag.String("doctor", "", "doctor or specialist name")
		analysisDate = flag.String("analysis-date", "", "analysis date shown on the report")
	)
	flag.Parse()

	if len(images) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -image is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	gateway, err := newGateway(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create %s gateway: %v", cfg.Provider, err)
	}
	defer gateway.Close()

	analysisUseCase := usecases.NewAnalysisUseCase(gateway)
	session := entities.NewSession()

	var analysis string
	if len(images) == 1 {
		analysis, err = analysisUseCase.AnalyzeSingle(ctx, session, images[0])
	} else {
		analysis, err = analysisUseCase.AnalyzeMultiple(ctx, session, images)
	}
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Println(analysis)

	if session.AdviceWorthy() {
		opts := services.AdviceOptions{
			ProductTable: *productTable,
			Budget:       *budget,
			Concerns:     splitConcerns(*concerns),
		}
		advice, err := analysisUseCase.RequestAdvice(ctx, session, analysis, opts)
		if err != nil {
			log.Fatalf("Advice request failed: %v", err)
		}
		fmt.Println()
		fmt.Println(advice)
	}

	if *out == "" {
		return
	}

	reportUseCase := usecases.NewReportUseCase(infrarepos.NewFileDocumentStore(cfg.ReportsDir))
	meta := entities.ReportMetadata{
		PatientName:  *patientName,
		PatientID:    *patientID,
		DateOfBirth:  *dateOfBirth,
		Gender:       *gender,
		HospitalName: *hospitalName,
		DoctorName:   *doctorName,
		AnalysisDate: *analysisDate,
	}
	if err := reportUseCase.PersistTo(session, meta, *out); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	fmt.Fprintf(os.Stderr, "report written to %s\n", *out)
}

func splitConcerns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newGateway(ctx context.Context, cfg *config.Config) (repositories.LanguageModelGateway, error) {
	switch cfg.Provider {
	case "openai":
		return external.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "stub":
		return external.NewStubGateway(), nil
	default:
		return external.NewGeminiGateway(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
