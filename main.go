package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arunmack789/Hair-Analysis-Report/internal/application/usecases"
	"github.com/arunmack789/Hair-Analysis-Report/internal/config"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
	"github.com/arunmack789/Hair-Analysis-Report/internal/infrastructure/api"
	"github.com/arunmack789/Hair-Analysis-Report/internal/infrastructure/external"
	infrarepos "github.com/arunmack789/Hair-Analysis-Report/internal/infrastructure/repositories"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gateway, err := newGateway(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create %s gateway: %v", cfg.Provider, err)
	}
	defer gateway.Close()

	sessions := infrarepos.NewMemorySessionRepository()
	store := infrarepos.NewFileDocumentStore(cfg.ReportsDir)

	analysisUseCase := usecases.NewAnalysisUseCase(gateway)
	reportUseCase := usecases.NewReportUseCase(store)

	handler := api.NewAnalysisHandler(analysisUseCase, reportUseCase, sessions)

	r := mux.NewRouter()
	r.HandleFunc("/", handler.HandleIndex).Methods("GET")
	r.HandleFunc("/analyze", handler.HandleAnalyze).Methods("POST")
	r.HandleFunc("/advice", handler.HandleAdvice).Methods("POST")
	r.HandleFunc("/followup", handler.HandleFollowUp).Methods("POST")
	r.HandleFunc("/products", handler.HandleProducts).Methods("POST")
	r.HandleFunc("/report/preview", handler.HandlePreview).Methods("POST")
	r.HandleFunc("/report", handler.HandleReport).Methods("POST")
	r.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")

	addr := ":" + strconv.Itoa(cfg.Port)
	slog.Info("starting server", "addr", addr, "provider", gateway.ProviderName(), "reports_dir", cfg.ReportsDir)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
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
