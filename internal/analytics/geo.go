package analytics

import (
	"github.com/juntas_vecinales/backend/internal/models"
	"github.com/juntas_vecinales/backend/internal/utils"
)

type NearestMatch struct {
	Junta      models.JuntaVecinal `json:"junta_vecinal"`
	DistanceKm float64             `json:"distancia_km"`
}

// Nearest returns the enabled junta closest to (lat, lon), or nil when no
// candidate is enabled. On equal distances the first candidate seen wins.
func Nearest(lat, lon float64, candidates []models.JuntaVecinal) *NearestMatch {
	minIdx := -1
	minDist := 0.0
	for i := range candidates {
		if !candidates[i].Enabled() {
			continue
		}
		d := utils.HaversineKm(lat, lon, candidates[i].Lat, candidates[i].Lon)
		if minIdx == -1 || d < minDist {
			minDist = d
			minIdx = i
		}
	}
	if minIdx < 0 {
		return nil
	}
	return &NearestMatch{Junta: candidates[minIdx], DistanceKm: minDist}
}
