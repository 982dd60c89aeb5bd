package analytics

import (
	"sort"

	"github.com/juntas_vecinales/backend/internal/models"
)

type SortKey string

const (
	SortEfficiencyIndex  SortKey = "indice_eficiencia"
	SortCriticalityIndex SortKey = "indice_criticidad"
	SortHeatRatio        SortKey = "eficiencia"
)

// Scored is implemented by ranking rows that can be ordered by a SortKey.
// Keys a row does not carry score 0.
type Scored interface {
	Score(key SortKey) float64
}

func (i EfficiencyItem) Score(key SortKey) float64 {
	if key == SortEfficiencyIndex {
		return i.Metrics.EfficiencyIndex
	}
	return 0
}

func (i CriticalityItem) Score(key SortKey) float64 {
	if key == SortCriticalityIndex {
		return i.Metrics.CriticalityIndex
	}
	return 0
}

func (i HeatItem) Score(key SortKey) float64 {
	if key == SortHeatRatio {
		return i.Metrics.Efficiency
	}
	return 0
}

// SortDescending orders items by key, highest first. Ties keep input order.
func SortDescending[T Scored](items []T, key SortKey) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Score(key) > items[b].Score(key)
	})
}

type Report[T Scored] struct {
	SortKey SortKey `json:"orden"`
	Items   []T     `json:"items"`
	Top     []T     `json:"top"`
	Best    *T      `json:"mejor"`
}

// Assemble wraps items, already ordered by key, with the top-N slice and the
// single best row. topN <= 0 means the whole list.
func Assemble[T Scored](items []T, key SortKey, topN int) Report[T] {
	if items == nil {
		items = []T{}
	}
	r := Report[T]{SortKey: key, Items: items, Top: items}
	if topN > 0 && topN < len(items) {
		r.Top = items[:topN]
	}
	if len(items) > 0 {
		best := items[0]
		r.Best = &best
	}
	return r
}

// EfficiencyRanking returns one row per junta sorted by indice_eficiencia.
func (e *Engine) EfficiencyRanking(complaints []models.Complaint) []EfficiencyItem {
	units := e.Aggregate(complaints, ModeEfficiency)
	out := make([]EfficiencyItem, 0, len(units))
	for _, u := range units {
		out = append(out, ComposeEfficiency(u))
	}
	SortDescending(out, SortEfficiencyIndex)
	return out
}

// CriticalityRanking returns one row per junta sorted by indice_criticidad,
// with pending complaints broken out by category.
func (e *Engine) CriticalityRanking(complaints []models.Complaint) []CriticalityItem {
	units := e.Aggregate(complaints, ModeCriticality)
	out := make([]CriticalityItem, 0, len(units))
	for _, u := range units {
		out = append(out, ComposeCriticality(u))
	}
	SortDescending(out, SortCriticalityIndex)
	return out
}

// HeatRanking returns one row per junta sorted by resolution ratio, with
// resolved complaints broken out by category.
func (e *Engine) HeatRanking(complaints []models.Complaint) []HeatItem {
	units := e.Aggregate(complaints, ModeHeat)
	out := make([]HeatItem, 0, len(units))
	for _, u := range units {
		out = append(out, ComposeHeat(u))
	}
	SortDescending(out, SortHeatRatio)
	return out
}
