package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/juntas_vecinales/backend/internal/analytics"
	"github.com/juntas_vecinales/backend/internal/config"
	"github.com/juntas_vecinales/backend/internal/http/middleware"
	"github.com/juntas_vecinales/backend/internal/models"
	"github.com/juntas_vecinales/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

type emptySource struct{}

func (emptySource) ListComplaints(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error) {
	return nil, nil
}

func (emptySource) ListJuntas(ctx context.Context, status models.JuntaStatus) ([]models.JuntaVecinal, error) {
	return nil, nil
}

func (emptySource) GetJunta(ctx context.Context, id int64) (models.JuntaVecinal, error) {
	return models.JuntaVecinal{ID: id, Status: models.JuntaEnabled}, nil
}

func testRouter(apiKey string) *gin.Engine {
	cfg := config.Config{APIKey: apiKey, CORSAllowed: "*", RequestTimeout: time.Second, Timezone: "UTC"}
	dash := &service.DashboardService{
		Source: emptySource{},
		Engine: analytics.NewEngine(1, time.UTC, zerolog.Nop()),
		TopN:   5,
		Logger: zerolog.Nop(),
	}
	return Router(cfg, okPinger{}, dash, zerolog.Nop())
}

func TestRouterHealthzIsPublic(t *testing.T) {
	r := testRouter("secret")
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouterAPIRoutes(t *testing.T) {
	r := testRouter("secret")
	paths := []string{
		"/api/estadisticas/resumen",
		"/api/estadisticas/mensual-categorias",
		"/api/estadisticas/categorias",
		"/api/estadisticas/recibidos-resueltos",
		"/api/estadisticas/departamentos",
		"/api/estadisticas/dashboard",
		"/api/rankings/eficiencia",
		"/api/rankings/criticidad",
		"/api/rankings/calor",
		"/api/juntas/cercana?lat=-33.4&lon=-70.6",
		"/api/juntas/distancia?lat1=0&lon1=0&lat2=1&lon2=1",
		"/api/juntas/2/distancia?lat=0&lon=0",
	}
	for _, p := range paths {
		req, _ := http.NewRequest(http.MethodGet, p, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without key, got %d", p, w.Code)
		}

		req.Header.Set(middleware.APIKeyHeader, "secret")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", p, w.Code, w.Body.String())
		}
	}
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}

	for _, route := range testRouter("").Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("route %s missing from swagger doc", path)
		}
		if _, ok := ops[strings.ToLower(route.Method)]; !ok {
			t.Fatalf("route %s %s missing from swagger doc", route.Method, path)
		}
	}
}
