// Package analytics computes dashboard statistics and junta rankings over a
// snapshot of complaints. Everything here is read-only and request-scoped:
// callers load the complaints, the engine walks them and returns plain values
// ready for JSON.
package analytics

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/juntas_vecinales/backend/internal/models"
)

const (
	uncategorized = "Sin categoría"
	noDepartment  = "Sin departamento"
	metricOverdue = "vencidos"
	metricDays    = "tiempo_resolucion"
	metricOnTime  = "resueltos_a_tiempo"
	metricMonth   = "serie_mensual"
	metricRating  = "calificacion"
)

type Engine struct {
	PendingStatusID int64
	Location        *time.Location
	Now             func() time.Time
	Logger          zerolog.Logger
}

func NewEngine(pendingStatusID int64, loc *time.Location, logger zerolog.Logger) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		PendingStatusID: pendingStatusID,
		Location:        loc,
		Now:             time.Now,
		Logger:          logger,
	}
}

// IsResolved reports whether the complaint has left the pending state: it has
// a status and that status is not the pending sentinel.
func (e *Engine) IsResolved(c models.Complaint) bool {
	return c.Status != nil && c.Status.ID != e.PendingStatusID
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now().In(e.loc())
	}
	return e.Now().In(e.loc())
}

func (e *Engine) loc() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

func (e *Engine) local(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(e.loc())
}

func (e *Engine) businessDays(start, end time.Time) (int, error) {
	return BusinessDaysBetween(e.local(start), e.local(end))
}

func (e *Engine) calendarDays(start, end time.Time) (int, error) {
	return CalendarDaysBetween(e.local(start), e.local(end))
}

func (e *Engine) skip(a *AnomalyError) {
	e.Logger.Debug().
		Err(a.Err).
		Int64("complaint_id", a.ComplaintID).
		Str("metric", a.Metric).
		Msg("record excluded from metric")
}

func categoryName(c models.Complaint) string {
	if c.Category == nil || c.Category.Name == "" {
		return uncategorized
	}
	return c.Category.Name
}

func departmentName(c models.Complaint) string {
	if c.Department == nil || c.Department.Name == "" {
		return noDepartment
	}
	return c.Department.Name
}

// latestResponse picks the most recent response; ties keep the first one seen.
func latestResponse(responses []models.Response) (models.Response, bool) {
	if len(responses) == 0 {
		return models.Response{}, false
	}
	best := responses[0]
	for _, r := range responses[1:] {
		if r.CreatedAt.After(best.CreatedAt) {
			best = r
		}
	}
	return best, true
}
