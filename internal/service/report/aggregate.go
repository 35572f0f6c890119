package report

import (
	"sort"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
)

// Count is one bucket of a grouping.
type Count struct {
	Key   string
	Count int
}

// ScoredRow is a consumption row with the assessment computed at read time.
type ScoredRow struct {
	domain.ConsumptionRow
	Assessment scoring.Assessment
}

// Summary groups a set of rows by category and by score label.
type Summary struct {
	Total      int
	Rows       []ScoredRow
	ByCategory []Count
	ByLabel    []Count
}

// CountByCategory counts rows per product category, largest first; ties
// are ordered by category name.
func CountByCategory(rows []domain.ConsumptionRow) []Count {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Product.Category]++
	}

	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// CountByLabel scores every row and counts per label. Every label of the
// scorer is present, in the scorer's order, including zero counts.
func CountByLabel(rows []domain.ConsumptionRow, scorer scoring.Scorer) []Count {
	labels := scorer.Labels()
	index := make(map[string]int, len(labels))
	out := make([]Count, len(labels))
	for i, l := range labels {
		index[l] = i
		out[i] = Count{Key: l}
	}

	for _, r := range rows {
		label := scorer.Label(scorer.Score(scoring.FromProduct(r.Product)))
		if i, ok := index[label]; ok {
			out[i].Count++
		}
	}
	return out
}

// ScoreRows attaches the scorer's assessment to each row, keeping order.
func ScoreRows(rows []domain.ConsumptionRow, scorer scoring.Scorer) []ScoredRow {
	scored := make([]ScoredRow, len(rows))
	for i, r := range rows {
		scored[i] = ScoredRow{
			ConsumptionRow: r,
			Assessment:     scoring.Assess(scorer, scoring.FromProduct(r.Product)),
		}
	}
	return scored
}

// Summarize scores each row and builds both groupings.
func Summarize(rows []domain.ConsumptionRow, scorer scoring.Scorer) Summary {
	return Summary{
		Total:      len(rows),
		Rows:       ScoreRows(rows, scorer),
		ByCategory: CountByCategory(rows),
		ByLabel:    CountByLabel(rows, scorer),
	}
}
