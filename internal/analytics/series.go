package analytics

import (
	"sort"
	"time"

	"github.com/juntas_vecinales/backend/internal/models"
)

var monthLabels = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// MonthLabel returns the three-letter Spanish abbreviation for m.
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthLabels[m-1]
}

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) less(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

func (k monthKey) label() string {
	return MonthLabel(k.month)
}

// monthOf truncates the creation timestamp to its month in the engine's zone.
func (e *Engine) monthOf(c models.Complaint) (monthKey, bool) {
	if c.CreatedAt.IsZero() {
		e.skip(newAnomaly(c.ID, metricMonth, ErrInvalidDate))
		return monthKey{}, false
	}
	t := e.local(c.CreatedAt)
	return monthKey{year: t.Year(), month: t.Month()}, true
}

func sortedMonths(seen map[monthKey]bool) []monthKey {
	keys := make([]monthKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

type Summary struct {
	Total          int     `json:"total"`
	Resolved       int     `json:"resueltos"`
	Pending        int     `json:"pendientes"`
	ResolutionRate float64 `json:"porcentaje_resolucion"`
}

func (e *Engine) Summary(complaints []models.Complaint) Summary {
	var s Summary
	for _, c := range complaints {
		s.Total++
		if e.IsResolved(c) {
			s.Resolved++
		} else {
			s.Pending++
		}
	}
	s.ResolutionRate = round2(Percent(s.Resolved, s.Total))
	return s
}

const monthField = "mes"

// ByMonthAndCategory returns one row per month in chronological order. Each
// row has the key "mes" followed by one key per category observed that month.
func (e *Engine) ByMonthAndCategory(complaints []models.Complaint) []*OrderedMap {
	rows := map[monthKey]*OrderedMap{}
	seen := map[monthKey]bool{}
	for _, c := range complaints {
		k, ok := e.monthOf(c)
		if !ok {
			continue
		}
		row, ok := rows[k]
		if !ok {
			row = NewOrderedMap()
			row.Set(monthField, k.label())
			rows[k] = row
			seen[k] = true
		}
		row.Incr(categorySeriesKey(categoryName(c)), 1)
	}

	out := make([]*OrderedMap, 0, len(rows))
	for _, k := range sortedMonths(seen) {
		out = append(out, rows[k])
	}
	return out
}

// categorySeriesKey moves a category whose name matches the month field to a
// suffixed key so the label is never overwritten.
func categorySeriesKey(name string) string {
	if name == monthField {
		return name + " (categoría)"
	}
	return name
}

type CategoryTotal struct {
	Category string `json:"categoria"`
	Total    int    `json:"total"`
}

// ByCategory counts complaints per category, highest first. Ties keep the
// order in which categories were first seen.
func (e *Engine) ByCategory(complaints []models.Complaint) []CategoryTotal {
	index := map[string]int{}
	out := []CategoryTotal{}
	for _, c := range complaints {
		name := categoryName(c)
		pos, ok := index[name]
		if !ok {
			pos = len(out)
			index[name] = pos
			out = append(out, CategoryTotal{Category: name})
		}
		out[pos].Total++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

type MonthVolume struct {
	Month      string `json:"mes"`
	Received   int    `json:"recibidos"`
	Resolved   int    `json:"resueltos"`
	InProgress int    `json:"en_curso"`
}

// ResolvedVsReceivedByMonth buckets complaints by creation month and splits
// each bucket into resolved and still-pending counts.
func (e *Engine) ResolvedVsReceivedByMonth(complaints []models.Complaint) []MonthVolume {
	buckets := map[monthKey]*MonthVolume{}
	seen := map[monthKey]bool{}
	for _, c := range complaints {
		k, ok := e.monthOf(c)
		if !ok {
			continue
		}
		b, ok := buckets[k]
		if !ok {
			b = &MonthVolume{Month: k.label()}
			buckets[k] = b
			seen[k] = true
		}
		b.Received++
		if e.IsResolved(c) {
			b.Resolved++
		} else {
			b.InProgress++
		}
	}

	out := make([]MonthVolume, 0, len(buckets))
	for _, k := range sortedMonths(seen) {
		out = append(out, *buckets[k])
	}
	return out
}

type DepartmentMonth struct {
	Total    int     `json:"total"`
	Resolved int     `json:"resueltos"`
	Rate     float64 `json:"tasa"`
}

// ResolutionRateByDepartment maps department name to an ordered map of month
// label to DepartmentMonth. Departments appear in first-seen order and months
// chronologically. Months are keyed by label only, so a range spanning more
// than a year folds the same month of different years together.
func (e *Engine) ResolutionRateByDepartment(complaints []models.Complaint) *OrderedMap {
	type deptBuckets struct {
		months map[monthKey]*DepartmentMonth
		seen   map[monthKey]bool
	}
	var order []string
	depts := map[string]*deptBuckets{}

	for _, c := range complaints {
		k, ok := e.monthOf(c)
		if !ok {
			continue
		}
		name := departmentName(c)
		d, ok := depts[name]
		if !ok {
			d = &deptBuckets{months: map[monthKey]*DepartmentMonth{}, seen: map[monthKey]bool{}}
			depts[name] = d
			order = append(order, name)
		}
		m, ok := d.months[k]
		if !ok {
			m = &DepartmentMonth{}
			d.months[k] = m
			d.seen[k] = true
		}
		m.Total++
		if e.IsResolved(c) {
			m.Resolved++
		}
	}

	out := NewOrderedMap()
	for _, name := range order {
		d := depts[name]
		byLabel := map[string]*DepartmentMonth{}
		months := NewOrderedMap()
		for _, k := range sortedMonths(d.seen) {
			src := d.months[k]
			dst, ok := byLabel[k.label()]
			if !ok {
				dst = &DepartmentMonth{}
				byLabel[k.label()] = dst
				months.Set(k.label(), dst)
			}
			dst.Total += src.Total
			dst.Resolved += src.Resolved
			dst.Rate = round2(Percent(dst.Resolved, dst.Total))
		}
		out.Set(name, months)
	}
	return out
}
