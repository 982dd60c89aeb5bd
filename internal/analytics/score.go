package analytics

import (
	"math"
	"time"

	"github.com/juntas_vecinales/backend/internal/models"
)

// VolumeSaturation is the complaint count at which the volume factor tops out.
const VolumeSaturation = 20

// VolumeFactor ramps linearly from 0 to 100 and saturates at VolumeSaturation complaints.
func VolumeFactor(total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(float64(total)/VolumeSaturation, 1) * 100
}

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func EfficiencyIndex(total, onTime int) float64 {
	return VolumeFactor(total)*0.5 + Percent(onTime, total)*0.5
}

func CriticalityIndex(total, overdue int) float64 {
	return VolumeFactor(total)*0.5 + Percent(overdue, total)*0.5
}

func AverageRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return round1(float64(sum) / float64(count))
}

// AverageDays is the floor of sum/count in whole calendar days.
func AverageDays(sum, count int) int {
	if count == 0 {
		return 0
	}
	return sum / count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type EfficiencyMetrics struct {
	Total             int     `json:"total"`
	Resolved          int     `json:"resueltos"`
	Pending           int     `json:"pendientes"`
	OnTime            int     `json:"resueltos_a_tiempo"`
	OnTimePct         float64 `json:"porcentaje_a_tiempo"`
	ResolutionRate    float64 `json:"tasa_resolucion"`
	AvgResolutionDays int     `json:"tiempo_promedio_dias"`
	AvgRating         float64 `json:"calificacion_promedio"`
	VolumeFactor      float64 `json:"factor_volumen"`
	EfficiencyIndex   float64 `json:"indice_eficiencia"`
}

type EfficiencyItem struct {
	Junta   models.JuntaVecinal `json:"junta_vecinal"`
	Metrics EfficiencyMetrics   `json:"metricas"`
}

type CriticalityMetrics struct {
	Total            int     `json:"total"`
	Resolved         int     `json:"resueltos"`
	Pending          int     `json:"pendientes"`
	Overdue          int     `json:"urgentes"`
	OverduePct       float64 `json:"porcentaje_urgentes"`
	VolumeFactor     float64 `json:"factor_volumen"`
	CriticalityIndex float64 `json:"indice_criticidad"`
}

type CriticalityItem struct {
	Junta      models.JuntaVecinal `json:"junta_vecinal"`
	Metrics    CriticalityMetrics  `json:"metricas"`
	Categories *OrderedMap         `json:"categorias"`
}

type HeatMetrics struct {
	Total             int        `json:"total"`
	Resolved          int        `json:"resueltos"`
	Pending           int        `json:"pendientes"`
	Efficiency        float64    `json:"eficiencia"`
	Intensity         float64    `json:"intensidad"`
	AvgRating         float64    `json:"calificacion_promedio"`
	AvgResolutionDays int        `json:"tiempo_promedio_dias"`
	LastResolution    *time.Time `json:"ultima_resolucion"`
}

type HeatItem struct {
	Junta      models.JuntaVecinal `json:"junta_vecinal"`
	Metrics    HeatMetrics         `json:"metricas"`
	Categories *OrderedMap         `json:"categorias"`
}

func ComposeEfficiency(acc *UnitAccumulator) EfficiencyItem {
	return EfficiencyItem{
		Junta: acc.Junta,
		Metrics: EfficiencyMetrics{
			Total:             acc.Total,
			Resolved:          acc.Resolved,
			Pending:           acc.Pending,
			OnTime:            acc.OnTime,
			OnTimePct:         round2(Percent(acc.OnTime, acc.Total)),
			ResolutionRate:    round2(Percent(acc.Resolved, acc.Total)),
			AvgResolutionDays: AverageDays(acc.DaysSum, acc.Resolved),
			AvgRating:         AverageRating(acc.RatingSum, acc.RatedCount),
			VolumeFactor:      round2(VolumeFactor(acc.Total)),
			EfficiencyIndex:   round2(EfficiencyIndex(acc.Total, acc.OnTime)),
		},
	}
}

func ComposeCriticality(acc *UnitAccumulator) CriticalityItem {
	return CriticalityItem{
		Junta: acc.Junta,
		Metrics: CriticalityMetrics{
			Total:            acc.Total,
			Resolved:         acc.Resolved,
			Pending:          acc.Pending,
			Overdue:          acc.Overdue,
			OverduePct:       round2(Percent(acc.Overdue, acc.Total)),
			VolumeFactor:     round2(VolumeFactor(acc.Total)),
			CriticalityIndex: round2(CriticalityIndex(acc.Total, acc.Overdue)),
		},
		Categories: acc.Categories,
	}
}

func ComposeHeat(acc *UnitAccumulator) HeatItem {
	ratio := Percent(acc.Resolved, acc.Total)
	return HeatItem{
		Junta: acc.Junta,
		Metrics: HeatMetrics{
			Total:             acc.Total,
			Resolved:          acc.Resolved,
			Pending:           acc.Pending,
			Efficiency:        round2(ratio),
			Intensity:         round2(ratio / 100),
			AvgRating:         AverageRating(acc.RatingSum, acc.RatedCount),
			AvgResolutionDays: AverageDays(acc.DaysSum, acc.Resolved),
			LastResolution:    acc.LastResolution,
		},
		Categories: acc.Categories,
	}
}
