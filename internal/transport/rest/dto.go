package rest

import (
	"time"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
	"github.com/heartmarshall/healthscan-backend/internal/service/catalog"
	"github.com/heartmarshall/healthscan-backend/internal/service/report"
)

type productResponse struct {
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	SodiumMg  float64   `json:"sodium_mg_per_100g"`
	SugarG    float64   `json:"sugar_g_per_100g"`
	TotalFatG float64   `json:"total_fat_g_per_100g"`
	IsGMO     bool      `json:"is_gmo"`
	UpdatedAt time.Time `json:"updated_at"`
}

type productViewResponse struct {
	Product    productResponse    `json:"product"`
	Assessment scoring.Assessment `json:"assessment"`
}

type scanResponse struct {
	Barcode string               `json:"barcode"`
	Found   bool                 `json:"found"`
	Result  *productViewResponse `json:"result,omitempty"`
}

type consumptionResponse struct {
	ID         string    `json:"id"`
	Barcode    string    `json:"barcode"`
	ConsumedAt time.Time `json:"consumed_at"`
}

type rowResponse struct {
	EventID    string             `json:"event_id"`
	Username   string             `json:"username,omitempty"`
	ConsumedAt time.Time          `json:"consumed_at"`
	Product    productResponse    `json:"product"`
	Assessment scoring.Assessment `json:"assessment"`
}

type countResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type summaryResponse struct {
	Total      int             `json:"total"`
	Rows       []rowResponse   `json:"rows"`
	ByCategory []countResponse `json:"by_category"`
	ByLabel    []countResponse `json:"by_label"`
}

type overviewResponse struct {
	summaryResponse
	Usernames []string `json:"usernames"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		Barcode:   p.Barcode,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		SodiumMg:  p.SodiumMg,
		SugarG:    p.SugarG,
		TotalFatG: p.TotalFatG,
		IsGMO:     p.IsGMO,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductViewResponse(v *catalog.ProductView) *productViewResponse {
	return &productViewResponse{
		Product:    toProductResponse(v.Product),
		Assessment: v.Assessment,
	}
}

func toRowResponses(rows []report.ScoredRow) []rowResponse {
	out := make([]rowResponse, len(rows))
	for i, r := range rows {
		out[i] = rowResponse{
			EventID:    r.EventID.String(),
			Username:   r.Username,
			ConsumedAt: r.ConsumedAt,
			Product:    toProductResponse(r.Product),
			Assessment: r.Assessment,
		}
	}
	return out
}

func toCountResponses(counts []report.Count) []countResponse {
	out := make([]countResponse, len(counts))
	for i, c := range counts {
		out[i] = countResponse{Key: c.Key, Count: c.Count}
	}
	return out
}

func toSummaryResponse(s *report.Summary) summaryResponse {
	return summaryResponse{
		Total:      s.Total,
		Rows:       toRowResponses(s.Rows),
		ByCategory: toCountResponses(s.ByCategory),
		ByLabel:    toCountResponses(s.ByLabel),
	}
}
