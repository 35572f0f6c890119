package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/service/catalog"
)

type catalogService interface {
	Lookup(ctx context.Context, barcode string) (*catalog.ProductView, bool, error)
	LookupImage(ctx context.Context, image []byte) (*catalog.ScanResult, error)
	UpsertProduct(ctx context.Context, input catalog.UpsertProductInput) (*domain.Product, error)
}

// ProductHandler serves catalog lookups and edits.
type ProductHandler struct {
	svc           catalogService
	maxImageBytes int64
	log           *slog.Logger
}

// NewProductHandler creates a ProductHandler. Scan uploads larger than
// maxImageBytes are rejected with 413.
func NewProductHandler(svc catalogService, maxImageBytes int64, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		svc:           svc,
		maxImageBytes: maxImageBytes,
		log:           logger.With("handler", "product"),
	}
}

type upsertProductRequest struct {
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	SodiumMg  float64 `json:"sodium_mg_per_100g"`
	SugarG    float64 `json:"sugar_g_per_100g"`
	TotalFatG float64 `json:"total_fat_g_per_100g"`
	IsGMO     bool    `json:"is_gmo"`
}

// Get handles GET /products/{barcode}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, found, err := h.svc.Lookup(r.Context(), r.PathValue("barcode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, toProductViewResponse(view))
}

// Put handles PUT /products/{barcode}. Every attribute is replaced.
func (h *ProductHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req upsertProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpsertProduct(r.Context(), catalog.UpsertProductInput{
		Barcode:   r.PathValue("barcode"),
		Name:      req.Name,
		Brand:     req.Brand,
		Category:  req.Category,
		SodiumMg:  req.SodiumMg,
		SugarG:    req.SugarG,
		TotalFatG: req.TotalFatG,
		IsGMO:     req.IsGMO,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(*p))
}

// Scan handles POST /products/scan. The body is the raw image.
func (h *ProductHandler) Scan(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxImageBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.LookupImage(r.Context(), image)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := scanResponse{Barcode: res.Barcode, Found: res.Found}
	if res.View != nil {
		resp.Result = toProductViewResponse(res.View)
	}
	writeJSON(w, http.StatusOK, resp)
}
