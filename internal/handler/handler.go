package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Dan9191/wealthwise/internal/integrations/alphavantage"
	"github.com/Dan9191/wealthwise/internal/middleware"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/Dan9191/wealthwise/internal/service"
	"github.com/sirupsen/logrus"
)

// Service is the business layer the handlers call
type Service interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (models.Report, error)
	Discipline(ctx context.Context, req models.AnalyzeRequest) (models.DisciplineReport, error)
	Quote(ctx context.Context, ticker string) (models.Quote, error)
	RecommendStocks(ctx context.Context) []models.StockRecommendation
	EmailReport(ctx context.Context, to, name string, req models.AnalyzeRequest) (models.MonthlyReport, error)
	ExportXML(r models.Report) ([]byte, error)
}

type Handler struct {
	svc Service
	log *logrus.Logger
}

func NewHandler(svc Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// EmailRequest is the body of POST /api/reports/email
type EmailRequest struct {
	To      string                `json:"to"`
	Name    string                `json:"name"`
	Profile models.AnalyzeRequest `json:"profile"`
}

// Health handles liveness checks
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Analyze handles the full analysis, as JSON or as XML with ?format=xml
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "xml") {
		out, err := h.svc.ExportXML(report)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		w.Write(out)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Discipline handles discipline-only scoring
func (h *Handler) Discipline(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if !h.decode(w, r, &req) {
		return
	}

	d, err := h.svc.Discipline(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Quote handles live quote lookups
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ticker := strings.TrimSpace(r.URL.Query().Get("ticker"))
	if ticker == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("ticker is required"))
		return
	}

	q, err := h.svc.Quote(r.Context(), ticker)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Recommendations handles the stock universe forecast
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stocks": h.svc.RecommendStocks(r.Context()),
	})
}

// EmailReport handles sending the monthly discipline report
func (h *Handler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.svc.EmailReport(r.Context(), req.To, req.Name, req.Profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger(r).Infof("Discipline report emailed to %s", req.To)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sent":          true,
		"to":            req.To,
		"monthlyReport": report,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return false
	}
	return true
}

// logger tags log lines with the authenticated user, when there is one
func (h *Handler) logger(r *http.Request) *logrus.Entry {
	entry := logrus.NewEntry(h.log)
	if id, ok := middleware.UserID(r.Context()); ok {
		entry = entry.WithField("user_id", id)
	}
	return entry
}

// writeError maps service and quote errors to status codes
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidSalary), errors.Is(err, service.ErrInvalidRecipient):
		status = http.StatusBadRequest
	case errors.Is(err, alphavantage.ErrSymbolNotFound):
		status = http.StatusNotFound
	case errors.Is(err, alphavantage.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, alphavantage.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger(r).Errorf("Request failed: %v", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorBody(msg))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
