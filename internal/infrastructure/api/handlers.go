package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/arunmack789/Hair-Analysis-Report/internal/application/usecases"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	domainrepos "github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/services"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/valueobjects"
)

// AnalysisHandler is the web front end: a thin adapter translating form
// submissions into the core session operations.
type AnalysisHandler struct {
	analysis *usecases.AnalysisUseCase
	reports  *usecases.ReportUseCase
	sessions domainrepos.SessionRepository
}

func NewAnalysisHandler(
	analysis *usecases.AnalysisUseCase,
	reports *usecases.ReportUseCase,
	sessions domainrepos.SessionRepository,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		reports:  reports,
		sessions: sessions,
	}
}

// HandleIndex serves the demo upload page.
func (h *AnalysisHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, indexHTML)
}

func (h *AnalysisHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// HandleAnalyze accepts a multipart form with image1..image4 plus patient
// fields, runs the single- or multi-image analysis on a fresh session, and
// auto-requests advice when the narrative is advice-worthy.
func (h *AnalysisHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid form: %w", err))
		return
	}

	paths, cleanup, err := h.saveUploads(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer cleanup()

	if len(paths) == 0 {
		writeError(w, http.StatusBadRequest, entities.ErrNoImages)
		return
	}

	session := entities.NewSession()
	if err := h.sessions.Save(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var analysis string
	if len(paths) == 1 {
		analysis, err = h.analysis.AnalyzeSingle(r.Context(), session, paths[0])
	} else {
		analysis, err = h.analysis.AnalyzeMultiple(r.Context(), session, paths)
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	// Follow the original flow: advice is requested automatically unless the
	// analysis flagged itself as unclear.
	advice := ""
	if session.AdviceWorthy() {
		advice, err = h.analysis.RequestAdvice(r.Context(), session, analysis, services.AdviceOptions{})
		if err != nil {
			slog.Error("advice request failed", "session", session.ID(), "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": session.ID(),
		"analysis":   analysis,
		"advice":     advice,
	})
}

type adviceRequest struct {
	SessionID    string   `json:"session_id"`
	ProductTable bool     `json:"product_table"`
	Budget       string   `json:"budget"`
	Concerns     []string `json:"concerns"`
}

func (h *AnalysisHandler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, err := h.sessions.FindByID(r.Context(), entities.SessionID(req.SessionID))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if !session.HasAnalysis() {
		writeError(w, http.StatusBadRequest, services.ErrNothingToReport)
		return
	}

	advice, err := h.analysis.RequestAdvice(r.Context(), session, session.Analysis(), services.AdviceOptions{
		ProductTable: req.ProductTable,
		Budget:       req.Budget,
		Concerns:     req.Concerns,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"advice": advice})
}

type followUpRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *AnalysisHandler) HandleFollowUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, err := h.sessions.FindByID(r.Context(), entities.SessionID(req.SessionID))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	reply, err := h.analysis.FollowUp(r.Context(), session, req.Message)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

type productsRequest struct {
	Budget   string   `json:"budget"`
	Concerns []string `json:"concerns"`
}

// HandleProducts serves the offline catalog lookup; no model call involved.
func (h *AnalysisHandler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	var req productsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	recommendations := services.RecommendProducts(req.Concerns, services.BudgetTier(req.Budget))
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recommendations})
}

type reportRequest struct {
	SessionID    string `json:"session_id"`
	PatientName  string `json:"patient_name"`
	PatientID    string `json:"patient_id"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
	HospitalName string `json:"hospital_name"`
	DoctorName   string `json:"doctor_name"`
	AnalysisDate string `json:"analysis_date"`
}

func (r reportRequest) metadata() entities.ReportMetadata {
	return entities.ReportMetadata{
		PatientName:  r.PatientName,
		PatientID:    r.PatientID,
		DateOfBirth:  r.DateOfBirth,
		Gender:       r.Gender,
		HospitalName: r.HospitalName,
		DoctorName:   r.DoctorName,
		AnalysisDate: r.AnalysisDate,
	}
}

// HandlePreview renders the report without persisting it.
func (h *AnalysisHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, err := h.sessions.FindByID(r.Context(), entities.SessionID(req.SessionID))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	document, err := h.reports.Preview(session, req.metadata())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, document)
}

// HandleReport renders the report and writes it to the reports directory.
func (h *AnalysisHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, err := h.sessions.FindByID(r.Context(), entities.SessionID(req.SessionID))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	path, err := h.reports.Generate(session, req.metadata())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	slog.Info("report generated", "session", session.ID(), "path", path)
	writeJSON(w, http.StatusOK, map[string]any{"path": path})
}

// saveUploads writes the uploaded images to temp files so the preprocessor
// can read them by path. The cleanup func removes them after the request.
func (h *AnalysisHandler) saveUploads(r *http.Request) ([]string, func(), error) {
	var paths []string
	cleanup := func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}

	for i := 1; i <= entities.MaxImagesPerTurn; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to read upload %d: %w", i, err)
		}

		tmp, err := os.CreateTemp("", "hair_upload_*"+filepath.Ext(header.Filename))
		if err != nil {
			file.Close()
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to buffer upload: %w", err)
		}

		_, err = io.Copy(tmp, file)
		file.Close()
		tmp.Close()
		if err != nil {
			os.Remove(tmp.Name())
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to buffer upload: %w", err)
		}

		paths = append(paths, tmp.Name())
	}

	return paths, cleanup, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrNoImages),
		errors.Is(err, entities.ErrTooManyImages),
		errors.Is(err, valueobjects.ErrImageNotFound),
		errors.Is(err, valueobjects.ErrImageDecode),
		errors.Is(err, services.ErrNothingToReport):
		return http.StatusBadRequest
	case errors.Is(err, domainrepos.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainrepos.ErrService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	slog.Error("request failed", "status", status, "error", err)
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
