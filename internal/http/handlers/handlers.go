package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/juntas_vecinales/backend/internal/geocode"
	"github.com/juntas_vecinales/backend/internal/models"
	"github.com/juntas_vecinales/backend/internal/service"
	"github.com/juntas_vecinales/backend/internal/utils"
)

const dateLayout = "2006-01-02"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Store     Pinger
	Dashboard *service.DashboardService
	Validator *validator.Validate
	Logger    zerolog.Logger
	Location  *time.Location
}

// ReportQuery holds the filters shared by every statistics and ranking endpoint.
type ReportQuery struct {
	Desde        string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta        string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Departamento int64  `form:"departamento" validate:"omitempty,gt=0"`
	Categoria    int64  `form:"categoria" validate:"omitempty,gt=0"`
	Junta        int64  `form:"junta" validate:"omitempty,gt=0"`
	Situacion    int64  `form:"situacion" validate:"omitempty,gt=0"`
	Q            string `form:"q" validate:"omitempty,max=200"`
}

type NearestQuery struct {
	Lat       *float64 `form:"lat" validate:"omitempty,latitude"`
	Lon       *float64 `form:"lon" validate:"omitempty,longitude"`
	Direccion string   `form:"direccion" validate:"omitempty,max=300"`
}

type PointQuery struct {
	Lat *float64 `form:"lat" validate:"required,latitude"`
	Lon *float64 `form:"lon" validate:"required,longitude"`
}

type DistanceQuery struct {
	Lat1 *float64 `form:"lat1" validate:"required,latitude"`
	Lon1 *float64 `form:"lon1" validate:"required,longitude"`
	Lat2 *float64 `form:"lat2" validate:"required,latitude"`
	Lon2 *float64 `form:"lon2" validate:"required,longitude"`
}

// @Summary Health check
// @Description Pings the database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Complaint summary
// @Description Total, resolved and pending complaints with the resolution rate
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} analytics.Summary
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/resumen [get]
func (h *Handler) Summary(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.Summary(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute summary", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Complaints per month and category
// @Description One row per month with the key mes and one count per category
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} []map[string]any
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/mensual-categorias [get]
func (h *Handler) ByMonthAndCategory(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.ByMonthAndCategory(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute monthly series", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Complaints per category
// @Description Category totals, highest first
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} []analytics.CategoryTotal
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/categorias [get]
func (h *Handler) ByCategory(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.ByCategory(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute category totals", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Received versus resolved per month
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} []analytics.MonthVolume
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/recibidos-resueltos [get]
func (h *Handler) ResolvedVsReceived(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.ResolvedVsReceived(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute monthly volume", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Resolution rate per department and month
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/departamentos [get]
func (h *Handler) ByDepartment(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.ByDepartment(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute department rates", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Dashboard
// @Description Every chart series computed over one snapshot
// @Tags estadisticas
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/estadisticas/dashboard [get]
func (h *Handler) DashboardAll(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.Dashboard(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute dashboard", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Efficiency ranking
// @Description Juntas ordered by indice_eficiencia
// @Tags rankings
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} analytics.Report[analytics.EfficiencyItem]
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/rankings/eficiencia [get]
func (h *Handler) EfficiencyRanking(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.EfficiencyRanking(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute efficiency ranking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Criticality ranking
// @Description Juntas ordered by indice_criticidad
// @Tags rankings
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} analytics.Report[analytics.CriticalityItem]
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/rankings/criticidad [get]
func (h *Handler) CriticalityRanking(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.CriticalityRanking(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute criticality ranking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Heat ranking
// @Description Juntas ordered by resolution ratio
// @Tags rankings
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param departamento query int false "Department id"
// @Param categoria query int false "Category id"
// @Param junta query int false "Junta vecinal id"
// @Param situacion query int false "Status id"
// @Param q query string false "Free text"
// @Success 200 {object} analytics.Report[analytics.HeatItem]
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/rankings/calor [get]
func (h *Handler) HeatRanking(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}
	result, err := h.Dashboard.HeatRanking(c.Request.Context(), f)
	if err != nil {
		h.dbError(c, "Failed to compute heat ranking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Nearest junta vecinal
// @Description Closest enabled junta to a coordinate or to a geocoded address
// @Tags juntas
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param direccion query string false "Street address"
// @Success 200 {object} service.NearestLookup
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/juntas/cercana [get]
func (h *Handler) NearestJunta(c *gin.Context) {
	var q NearestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query", err.Error())
		return
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	ctx := c.Request.Context()
	switch {
	case q.Lat != nil && q.Lon != nil:
		result, err := h.Dashboard.NearestJunta(ctx, *q.Lat, *q.Lon)
		if err != nil {
			h.dbError(c, "Failed to load juntas", err)
			return
		}
		c.JSON(http.StatusOK, result)
	case strings.TrimSpace(q.Direccion) != "":
		result, err := h.Dashboard.NearestJuntaByAddress(ctx, q.Direccion)
		if err != nil {
			switch {
			case errors.Is(err, geocode.ErrNotFound):
				writeError(c, http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address could not be geocoded", result.Query)
			case errors.Is(err, service.ErrGeocoderDisabled):
				writeError(c, http.StatusServiceUnavailable, "GEOCODER_DISABLED", "Address lookup is not available", nil)
			default:
				h.Logger.Error().Err(err).Str("direccion", q.Direccion).Msg("nearest junta by address failed")
				writeError(c, http.StatusBadGateway, "GEOCODER_ERROR", "Address lookup failed", err.Error())
			}
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "lat and lon, or direccion, are required", nil)
	}
}

// @Summary Distance between two points
// @Description Great-circle distance in kilometres
// @Tags juntas
// @Produce json
// @Param lat1 query number true "Latitude of the first point"
// @Param lon1 query number true "Longitude of the first point"
// @Param lat2 query number true "Latitude of the second point"
// @Param lon2 query number true "Longitude of the second point"
// @Success 200 {object} map[string]number
// @Failure 400 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/juntas/distancia [get]
func (h *Handler) Distance(c *gin.Context) {
	var q DistanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query", err.Error())
		return
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	km := utils.HaversineKm(*q.Lat1, *q.Lon1, *q.Lat2, *q.Lon2)
	c.JSON(http.StatusOK, gin.H{"distancia_km": km})
}

// @Summary Distance to a junta vecinal
// @Tags juntas
// @Produce json
// @Param id path int true "Junta id"
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} service.JuntaDistance
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security ApiKeyAuth
// @Router /api/juntas/{id}/distancia [get]
func (h *Handler) JuntaDistance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "INVALID_ID", "Invalid junta id", nil)
		return
	}
	var q PointQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query", err.Error())
		return
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	result, err := h.Dashboard.DistanceToJunta(c.Request.Context(), id, *q.Lat, *q.Lon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Junta not found", nil)
			return
		}
		h.dbError(c, "Failed to load junta", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// bindFilter reads and validates ReportQuery. It writes the error response
// itself and returns false when the request is invalid.
func (h *Handler) bindFilter(c *gin.Context) (models.ComplaintFilter, bool) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query", err.Error())
		return models.ComplaintFilter{}, false
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return models.ComplaintFilter{}, false
	}
	f, err := q.toFilter(h.location())
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return models.ComplaintFilter{}, false
	}
	return f, true
}

func (q ReportQuery) toFilter(loc *time.Location) (models.ComplaintFilter, error) {
	f := models.ComplaintFilter{
		DepartmentID: q.Departamento,
		CategoryID:   q.Categoria,
		JuntaID:      q.Junta,
		StatusID:     q.Situacion,
		Query:        strings.TrimSpace(q.Q),
	}
	if q.Desde != "" {
		from, err := time.ParseInLocation(dateLayout, q.Desde, loc)
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if q.Hasta != "" {
		to, err := time.ParseInLocation(dateLayout, q.Hasta, loc)
		if err != nil {
			return f, err
		}
		// hasta is inclusive
		to = to.AddDate(0, 0, 1)
		f.To = &to
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return f, errors.New("desde must not be after hasta")
	}
	return f, nil
}

func (h *Handler) location() *time.Location {
	if h.Location == nil {
		return time.UTC
	}
	return h.Location
}

func (h *Handler) dbError(c *gin.Context, message string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeError(c, http.StatusGatewayTimeout, "TIMEOUT", message, err.Error())
		return
	}
	h.Logger.Error().Err(err).Msg(message)
	writeError(c, http.StatusInternalServerError, "DB_ERROR", message, err.Error())
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
