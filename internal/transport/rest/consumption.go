package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/service/report"
)

type ledgerService interface {
	Consume(ctx context.Context, barcode string) (*domain.ConsumptionEvent, error)
}

type historyService interface {
	MyHistory(ctx context.Context) ([]report.ScoredRow, error)
	AllHistory(ctx context.Context) ([]report.ScoredRow, error)
}

// ConsumptionHandler records and lists consumption events.
type ConsumptionHandler struct {
	ledger  ledgerService
	history historyService
	log     *slog.Logger
}

// NewConsumptionHandler creates a ConsumptionHandler.
func NewConsumptionHandler(ledger ledgerService, history historyService, logger *slog.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{
		ledger:  ledger,
		history: history,
		log:     logger.With("handler", "consumption"),
	}
}

type consumeRequest struct {
	Barcode string `json:"barcode"`
}

// Create handles POST /consumption for the authenticated user.
func (h *ConsumptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req consumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.ledger.Consume(r.Context(), req.Barcode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, consumptionResponse{
		ID:         ev.ID.String(),
		Barcode:    ev.Barcode,
		ConsumedAt: ev.ConsumedAt,
	})
}

// ListMine handles GET /me/consumption.
func (h *ConsumptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	rows, err := h.history.MyHistory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRowResponses(rows))
}

// ListAll handles GET /nutritionist/consumption.
func (h *ConsumptionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.history.AllHistory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRowResponses(rows))
}
