package analytics

import (
	"time"

	"github.com/juntas_vecinales/backend/internal/models"
)

type Mode int

const (
	ModeEfficiency Mode = iota
	ModeCriticality
	ModeHeat
)

func (m Mode) String() string {
	switch m {
	case ModeEfficiency:
		return "efficiency"
	case ModeCriticality:
		return "criticality"
	case ModeHeat:
		return "heat"
	default:
		return "unknown"
	}
}

// UnitAccumulator holds the running counters for one junta during a single
// pass. Which counters move depends on the Mode:
//   - efficiency: OnTime, DaysSum, ratings, Categories of resolved complaints
//   - criticality: Overdue, Categories of pending complaints
//   - heat: DaysSum, ratings, LastResolution, Categories of resolved complaints
type UnitAccumulator struct {
	Junta          models.JuntaVecinal
	Total          int
	Resolved       int
	Pending        int
	OnTime         int
	Overdue        int
	DaysSum        int
	RatingSum      int
	RatedCount     int
	LastResolution *time.Time
	Categories     *OrderedMap
}

func newUnitAccumulator(j models.JuntaVecinal) *UnitAccumulator {
	return &UnitAccumulator{Junta: j, Categories: NewOrderedMap()}
}

// Aggregate walks complaints once and returns one accumulator per junta, in
// the order each junta was first seen. Complaints without a junta are skipped.
func (e *Engine) Aggregate(complaints []models.Complaint, mode Mode) []*UnitAccumulator {
	index := map[int64]int{}
	var units []*UnitAccumulator
	now := e.now()

	for _, c := range complaints {
		if c.Junta == nil {
			continue
		}
		pos, ok := index[c.Junta.ID]
		if !ok {
			pos = len(units)
			index[c.Junta.ID] = pos
			units = append(units, newUnitAccumulator(*c.Junta))
		}
		acc := units[pos]
		acc.Total++

		if e.IsResolved(c) {
			acc.Resolved++
			if mode == ModeCriticality {
				continue
			}
			acc.Categories.Incr(categoryName(c), 1)
			e.accumulateResolution(acc, c, mode)
			continue
		}

		acc.Pending++
		if mode != ModeCriticality {
			continue
		}
		acc.Categories.Incr(categoryName(c), 1)
		elapsed, err := e.businessDays(c.CreatedAt, now)
		if err != nil {
			e.skip(newAnomaly(c.ID, metricOverdue, err))
			continue
		}
		if elapsed > LegalDeadlineBusinessDays {
			acc.Overdue++
		}
	}

	out := units[:0]
	for _, u := range units {
		if u.Total == 0 {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (e *Engine) accumulateResolution(acc *UnitAccumulator, c models.Complaint, mode Mode) {
	latest, ok := latestResponse(c.Responses)
	if !ok {
		return
	}

	if days, err := e.calendarDays(c.CreatedAt, latest.CreatedAt); err != nil {
		e.skip(newAnomaly(c.ID, metricDays, err))
	} else {
		acc.DaysSum += days
	}

	switch {
	case latest.Rating > 5 || latest.Rating < 0:
		e.skip(newAnomaly(c.ID, metricRating, ErrRatingOutOfRange))
	case latest.Rating > 0:
		acc.RatingSum += latest.Rating
		acc.RatedCount++
	}

	switch mode {
	case ModeEfficiency:
		elapsed, err := e.businessDays(c.CreatedAt, latest.CreatedAt)
		if err != nil {
			e.skip(newAnomaly(c.ID, metricOnTime, err))
			return
		}
		if elapsed <= LegalDeadlineBusinessDays {
			acc.OnTime++
		}
	case ModeHeat:
		if latest.CreatedAt.IsZero() {
			return
		}
		if acc.LastResolution == nil || latest.CreatedAt.After(*acc.LastResolution) {
			t := latest.CreatedAt
			acc.LastResolution = &t
		}
	}
}
