package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/juntas_vecinales/backend/internal/analytics"
	"github.com/juntas_vecinales/backend/internal/models"
	"github.com/juntas_vecinales/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type stubSource struct {
	complaints []models.Complaint
	juntas     []models.JuntaVecinal
	err        error
	filter     models.ComplaintFilter
}

func (s *stubSource) ListComplaints(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error) {
	s.filter = f
	return s.complaints, s.err
}

func (s *stubSource) ListJuntas(ctx context.Context, status models.JuntaStatus) ([]models.JuntaVecinal, error) {
	return s.juntas, s.err
}

func (s *stubSource) GetJunta(ctx context.Context, id int64) (models.JuntaVecinal, error) {
	for _, j := range s.juntas {
		if j.ID == id {
			return j, nil
		}
	}
	return models.JuntaVecinal{}, pgx.ErrNoRows
}

var testNow = time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC)

func newTestRouter(src *stubSource) *gin.Engine {
	engine := analytics.NewEngine(1, time.UTC, zerolog.Nop())
	engine.Now = func() time.Time { return testNow }
	h := &Handler{
		Store:     stubPinger{},
		Dashboard: &service.DashboardService{Source: src, Engine: engine, TopN: 3, Logger: zerolog.Nop()},
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
		Location:  time.UTC,
	}
	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.GET("/resumen", h.Summary)
	r.GET("/mensual", h.ByMonthAndCategory)
	r.GET("/criticidad", h.CriticalityRanking)
	r.GET("/cercana", h.NearestJunta)
	r.GET("/distancia", h.Distance)
	r.GET("/juntas/:id/distancia", h.JuntaDistance)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

func TestSummaryForwardsFilter(t *testing.T) {
	src := &stubSource{complaints: []models.Complaint{
		{ID: 1, Status: &models.Status{ID: 1}, CreatedAt: testNow},
		{ID: 2, Status: &models.Status{ID: 2}, CreatedAt: testNow},
	}}
	r := newTestRouter(src)

	w := get(r, "/resumen?desde=2025-01-01&hasta=2025-01-31&departamento=4&q=%20poste%20")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var s analytics.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Total != 2 || s.Resolved != 1 || s.ResolutionRate != 50 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if src.filter.DepartmentID != 4 || src.filter.Query != "poste" {
		t.Fatalf("unexpected filter %+v", src.filter)
	}
	if src.filter.To == nil || !src.filter.To.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected exclusive upper bound, got %v", src.filter.To)
	}
}

func TestSummaryValidation(t *testing.T) {
	r := newTestRouter(&stubSource{})
	cases := []string{
		"/resumen?desde=01-02-2025",
		"/resumen?departamento=-1",
		"/resumen?desde=2025-02-01&hasta=2025-01-01",
	}
	for _, target := range cases {
		w := get(r, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
		}
		if code := errorCode(t, w); code != "VALIDATION_ERROR" {
			t.Fatalf("%s: expected VALIDATION_ERROR, got %s", target, code)
		}
	}
	if w := get(r, "/resumen?categoria=abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non numeric id, got %d", w.Code)
	}
}

func TestSourceFailure(t *testing.T) {
	r := newTestRouter(&stubSource{err: errors.New("connection refused")})
	w := get(r, "/criticidad")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "DB_ERROR" {
		t.Fatalf("expected DB_ERROR, got %s", code)
	}
}

func TestCriticalityRankingEmpty(t *testing.T) {
	r := newTestRouter(&stubSource{})
	w := get(r, "/criticidad")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"items":[]`) || !strings.Contains(body, `"mejor":null`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestMonthlySeriesKeepsKeyOrder(t *testing.T) {
	cat := &models.Category{ID: 1, Name: "Veredas"}
	src := &stubSource{complaints: []models.Complaint{
		{ID: 1, Category: cat, CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
	}}
	w := get(newTestRouter(src), "/mensual")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `[{"mes":"Mar","Veredas":1}]` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestNearestJunta(t *testing.T) {
	src := &stubSource{juntas: []models.JuntaVecinal{
		{ID: 9, Name: "Las Ánimas", Lat: -39.80, Lon: -73.22, Status: models.JuntaEnabled},
	}}
	r := newTestRouter(src)

	w := get(r, "/cercana?lat=-39.81&lon=-73.23")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res service.NearestLookup
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Match == nil || res.Match.Junta.ID != 9 {
		t.Fatalf("unexpected match %+v", res.Match)
	}

	if w := get(r, "/cercana?lat=120&lon=0"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid latitude, got %d", w.Code)
	}
	if w := get(r, "/cercana"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without coordinates, got %d", w.Code)
	}
	if w := get(r, "/cercana?direccion=Picarte"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without geocoder, got %d", w.Code)
	}
}

func TestNearestJuntaNoneEnabled(t *testing.T) {
	w := get(newTestRouter(&stubSource{}), "/cercana?lat=-39.81&lon=-73.23")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"resultado":null`) {
		t.Fatalf("expected null result, got %s", w.Body.String())
	}
}

func TestDistance(t *testing.T) {
	r := newTestRouter(&stubSource{})
	w := get(r, "/distancia?lat1=-33.45&lon1=-70.66&lat2=-33.45&lon2=-70.66")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"distancia_km":0}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w := get(r, "/distancia?lat1=-33.45&lon1=-70.66"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing point, got %d", w.Code)
	}
}

func TestJuntaDistance(t *testing.T) {
	src := &stubSource{juntas: []models.JuntaVecinal{
		{ID: 3, Lat: -33.45, Lon: -70.66, Status: models.JuntaPending},
	}}
	r := newTestRouter(src)

	w := get(r, "/juntas/3/distancia?lat=-33.45&lon=-70.66")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res service.JuntaDistance
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Junta.ID != 3 || res.DistanceKm != 0 {
		t.Fatalf("unexpected result %+v", res)
	}

	if w := get(r, "/juntas/8/distancia?lat=0&lon=0"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := get(r, "/juntas/x/distancia?lat=0&lon=0"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}
