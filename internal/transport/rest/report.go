package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/healthscan-backend/internal/service/report"
)

type reportService interface {
	UserReport(ctx context.Context) (*report.Summary, error)
	OverviewReport(ctx context.Context) (*report.Overview, error)
	UserReportFor(ctx context.Context, username string) (*report.Summary, error)
}

// ReportHandler serves consumption summaries.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Mine handles GET /me/report.
func (h *ReportHandler) Mine(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.UserReport(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}

// Nutritionist handles GET /nutritionist/report. With ?username= it
// drills down into one user, otherwise it returns the overview.
func (h *ReportHandler) Nutritionist(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("username") {
		s, err := h.svc.UserReportFor(r.Context(), r.URL.Query().Get("username"))
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummaryResponse(s))
		return
	}

	o, err := h.svc.OverviewReport(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := overviewResponse{summaryResponse: toSummaryResponse(&o.Summary), Usernames: o.Usernames}
	if resp.Usernames == nil {
		resp.Usernames = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}
