package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/juntas_vecinales/backend/internal/analytics"
	"github.com/juntas_vecinales/backend/internal/geocode"
	"github.com/juntas_vecinales/backend/internal/models"
	"github.com/juntas_vecinales/backend/internal/utils"
)

var ErrGeocoderDisabled = errors.New("geocoder not configured")

// ComplaintSource is the persistence collaborator. *db.Store implements it.
type ComplaintSource interface {
	ListComplaints(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error)
	ListJuntas(ctx context.Context, status models.JuntaStatus) ([]models.JuntaVecinal, error)
	GetJunta(ctx context.Context, id int64) (models.JuntaVecinal, error)
}

type DashboardService struct {
	Source   ComplaintSource
	Engine   *analytics.Engine
	Geocoder geocode.Geocoder
	TopN     int
	Comuna   string
	Country  string
	Logger   zerolog.Logger
}

type Dashboard struct {
	Summary            analytics.Summary         `json:"resumen"`
	ByMonthAndCategory []*analytics.OrderedMap   `json:"mensual_por_categoria"`
	ByCategory         []analytics.CategoryTotal `json:"por_categoria"`
	ResolvedVsReceived []analytics.MonthVolume   `json:"recibidos_vs_resueltos"`
	ByDepartment       *analytics.OrderedMap     `json:"tasa_por_departamento"`
}

type NearestLookup struct {
	Query   string                  `json:"consulta,omitempty"`
	Geocode *geocode.Result         `json:"geocodificacion,omitempty"`
	Match   *analytics.NearestMatch `json:"resultado"`
}

type JuntaDistance struct {
	Junta      models.JuntaVecinal `json:"junta"`
	DistanceKm float64             `json:"distancia_km"`
}

// snapshot loads the filtered complaints once for a single computation.
func (s *DashboardService) snapshot(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error) {
	start := time.Now()
	complaints, err := s.Source.ListComplaints(ctx, f)
	if err != nil {
		return nil, err
	}
	s.Logger.Debug().
		Int("complaints", len(complaints)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot loaded")
	return complaints, nil
}

func (s *DashboardService) Summary(ctx context.Context, f models.ComplaintFilter) (analytics.Summary, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return analytics.Summary{}, err
	}
	return s.Engine.Summary(complaints), nil
}

func (s *DashboardService) ByMonthAndCategory(ctx context.Context, f models.ComplaintFilter) ([]*analytics.OrderedMap, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Engine.ByMonthAndCategory(complaints), nil
}

func (s *DashboardService) ByCategory(ctx context.Context, f models.ComplaintFilter) ([]analytics.CategoryTotal, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Engine.ByCategory(complaints), nil
}

func (s *DashboardService) ResolvedVsReceived(ctx context.Context, f models.ComplaintFilter) ([]analytics.MonthVolume, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Engine.ResolvedVsReceivedByMonth(complaints), nil
}

func (s *DashboardService) ByDepartment(ctx context.Context, f models.ComplaintFilter) (*analytics.OrderedMap, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Engine.ResolutionRateByDepartment(complaints), nil
}

// Dashboard computes every chart series over one snapshot.
func (s *DashboardService) Dashboard(ctx context.Context, f models.ComplaintFilter) (Dashboard, error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Summary:            s.Engine.Summary(complaints),
		ByMonthAndCategory: s.Engine.ByMonthAndCategory(complaints),
		ByCategory:         s.Engine.ByCategory(complaints),
		ResolvedVsReceived: s.Engine.ResolvedVsReceivedByMonth(complaints),
		ByDepartment:       s.Engine.ResolutionRateByDepartment(complaints),
	}, nil
}

func (s *DashboardService) EfficiencyRanking(ctx context.Context, f models.ComplaintFilter) (analytics.Report[analytics.EfficiencyItem], error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return analytics.Report[analytics.EfficiencyItem]{}, err
	}
	items := s.Engine.EfficiencyRanking(complaints)
	return analytics.Assemble(items, analytics.SortEfficiencyIndex, s.TopN), nil
}

func (s *DashboardService) CriticalityRanking(ctx context.Context, f models.ComplaintFilter) (analytics.Report[analytics.CriticalityItem], error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return analytics.Report[analytics.CriticalityItem]{}, err
	}
	items := s.Engine.CriticalityRanking(complaints)
	return analytics.Assemble(items, analytics.SortCriticalityIndex, s.TopN), nil
}

func (s *DashboardService) HeatRanking(ctx context.Context, f models.ComplaintFilter) (analytics.Report[analytics.HeatItem], error) {
	complaints, err := s.snapshot(ctx, f)
	if err != nil {
		return analytics.Report[analytics.HeatItem]{}, err
	}
	items := s.Engine.HeatRanking(complaints)
	return analytics.Assemble(items, analytics.SortHeatRatio, s.TopN), nil
}

// NearestJunta returns the closest enabled junta. A nil Match means none is enabled.
func (s *DashboardService) NearestJunta(ctx context.Context, lat, lon float64) (NearestLookup, error) {
	juntas, err := s.Source.ListJuntas(ctx, models.JuntaEnabled)
	if err != nil {
		return NearestLookup{}, err
	}
	return NearestLookup{Match: analytics.Nearest(lat, lon, juntas)}, nil
}

// DistanceToJunta measures the great-circle distance from a point to one junta,
// whatever its status.
func (s *DashboardService) DistanceToJunta(ctx context.Context, id int64, lat, lon float64) (JuntaDistance, error) {
	j, err := s.Source.GetJunta(ctx, id)
	if err != nil {
		return JuntaDistance{}, err
	}
	return JuntaDistance{Junta: j, DistanceKm: utils.HaversineKm(lat, lon, j.Lat, j.Lon)}, nil
}

// NearestJuntaByAddress geocodes a free-text address inside the configured
// comuna and returns the closest enabled junta to it.
func (s *DashboardService) NearestJuntaByAddress(ctx context.Context, address string) (NearestLookup, error) {
	if s.Geocoder == nil {
		return NearestLookup{}, ErrGeocoderDisabled
	}
	query := geocode.BuildGeocodeQuery(address, s.Comuna, s.Country)
	res, err := s.Geocoder.Geocode(ctx, query)
	if err != nil {
		return NearestLookup{Query: query}, err
	}
	lookup, err := s.NearestJunta(ctx, res.Lat, res.Lon)
	if err != nil {
		return NearestLookup{}, err
	}
	lookup.Query = query
	lookup.Geocode = &res
	s.Logger.Debug().
		Str("query", query).
		Float64("lat", res.Lat).
		Float64("lon", res.Lon).
		Bool("matched", lookup.Match != nil).
		Msg("address geocoded")
	return lookup, nil
}
