package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juntas_vecinales/backend/internal/models"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// WithTx runs fn inside a read-only repeatable-read transaction so every
// query sees the same snapshot.
func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const complaintSelect = `SELECT p.id, p.codigo, p.titulo, p.descripcion, p.prioridad, p.latitud, p.longitud, p.fecha_publicacion,
		j.id, j.nombre, j.latitud, j.longitud, j.estado,
		c.id, c.nombre,
		d.id, d.nombre,
		s.id, s.nombre
	FROM publicaciones p
	LEFT JOIN juntas_vecinales j ON j.id = p.junta_vecinal_id
	LEFT JOIN categorias c ON c.id = p.categoria_id
	LEFT JOIN departamentos d ON d.id = p.departamento_id
	LEFT JOIN situaciones s ON s.id = p.situacion_id`

func buildComplaintQuery(f models.ComplaintFilter) (string, []any) {
	query := complaintSelect
	var args []any
	var wheres []string
	if f.From != nil {
		args = append(args, *f.From)
		wheres = append(wheres, fmt.Sprintf("p.fecha_publicacion >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		wheres = append(wheres, fmt.Sprintf("p.fecha_publicacion < $%d", len(args)))
	}
	if f.DepartmentID > 0 {
		args = append(args, f.DepartmentID)
		wheres = append(wheres, fmt.Sprintf("p.departamento_id = $%d", len(args)))
	}
	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		wheres = append(wheres, fmt.Sprintf("p.categoria_id = $%d", len(args)))
	}
	if f.JuntaID > 0 {
		args = append(args, f.JuntaID)
		wheres = append(wheres, fmt.Sprintf("p.junta_vecinal_id = $%d", len(args)))
	}
	if f.StatusID > 0 {
		args = append(args, f.StatusID)
		wheres = append(wheres, fmt.Sprintf("p.situacion_id = $%d", len(args)))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+q+"%")
		wheres = append(wheres, fmt.Sprintf("(p.titulo ILIKE $%d OR p.descripcion ILIKE $%d OR p.codigo ILIKE $%d)", len(args), len(args), len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY p.fecha_publicacion ASC, p.id ASC"
	return query, args
}

// ListComplaints loads the filtered complaint snapshot together with every
// response, in one read-only transaction.
func (s *Store) ListComplaints(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error) {
	var out []models.Complaint
	err := s.WithTx(ctx, func(tx pgx.Tx) error {
		complaints, err := queryComplaints(ctx, tx, f)
		if err != nil {
			return err
		}
		if len(complaints) == 0 {
			out = complaints
			return nil
		}
		ids := make([]int64, 0, len(complaints))
		for _, c := range complaints {
			ids = append(ids, c.ID)
		}
		responses, err := queryResponses(ctx, tx, ids)
		if err != nil {
			return err
		}
		for i := range complaints {
			complaints[i].Responses = responses[complaints[i].ID]
		}
		out = complaints
		return nil
	})
	return out, err
}

func queryComplaints(ctx context.Context, tx pgx.Tx, f models.ComplaintFilter) ([]models.Complaint, error) {
	query, args := buildComplaintQuery(f)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Complaint{}
	for rows.Next() {
		var r complaintRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, err
		}
		out = append(out, r.complaint())
	}
	return out, rows.Err()
}

// complaintRow holds one scanned publicaciones row. Every column but the id
// is nullable so a single incomplete record does not fail the snapshot.
type complaintRow struct {
	id         int64
	code       *string
	title      *string
	desc       *string
	priority   *string
	lat        *float64
	lon        *float64
	createdAt  *time.Time
	juntaID    *int64
	juntaName  *string
	juntaLat   *float64
	juntaLon   *float64
	juntaState *string
	catID      *int64
	catName    *string
	deptID     *int64
	deptName   *string
	statusID   *int64
	statusName *string
}

func (r *complaintRow) dest() []any {
	return []any{
		&r.id, &r.code, &r.title, &r.desc, &r.priority, &r.lat, &r.lon, &r.createdAt,
		&r.juntaID, &r.juntaName, &r.juntaLat, &r.juntaLon, &r.juntaState,
		&r.catID, &r.catName,
		&r.deptID, &r.deptName,
		&r.statusID, &r.statusName,
	}
}

func (r complaintRow) complaint() models.Complaint {
	c := models.Complaint{
		ID:          r.id,
		Code:        derefString(r.code),
		Title:       derefString(r.title),
		Description: derefString(r.desc),
		Priority:    models.Priority(derefString(r.priority)),
		Lat:         derefFloat(r.lat),
		Lon:         derefFloat(r.lon),
	}
	// a NULL fecha stays zero and is skipped by the date based metrics
	if r.createdAt != nil {
		c.CreatedAt = *r.createdAt
	}
	if r.juntaID != nil {
		c.Junta = &models.JuntaVecinal{
			ID:     *r.juntaID,
			Name:   derefString(r.juntaName),
			Lat:    derefFloat(r.juntaLat),
			Lon:    derefFloat(r.juntaLon),
			Status: models.JuntaStatus(derefString(r.juntaState)),
		}
	}
	if r.catID != nil {
		c.Category = &models.Category{ID: *r.catID, Name: derefString(r.catName)}
	}
	if r.deptID != nil {
		c.Department = &models.Department{ID: *r.deptID, Name: derefString(r.deptName)}
	}
	if r.statusID != nil {
		c.Status = &models.Status{ID: *r.statusID, Name: derefString(r.statusName)}
	}
	return c
}

func queryResponses(ctx context.Context, tx pgx.Tx, complaintIDs []int64) (map[int64][]models.Response, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, publicacion_id, fecha, COALESCE(evaluacion, 0), COALESCE(descripcion, '')
		FROM respuestas
		WHERE publicacion_id = ANY($1)
		ORDER BY fecha ASC, id ASC
	`, complaintIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64][]models.Response{}
	for rows.Next() {
		var (
			r    models.Response
			date *time.Time
		)
		if err := rows.Scan(&r.ID, &r.ComplaintID, &date, &r.Rating, &r.Description); err != nil {
			return nil, err
		}
		if date != nil {
			r.CreatedAt = *date
		}
		out[r.ComplaintID] = append(out[r.ComplaintID], r)
	}
	return out, rows.Err()
}

// ListJuntas returns juntas ordered by id. An empty status returns all of them.
func (s *Store) ListJuntas(ctx context.Context, status models.JuntaStatus) ([]models.JuntaVecinal, error) {
	query := `SELECT id, nombre, latitud, longitud, estado FROM juntas_vecinales`
	var args []any
	if status != "" {
		args = append(args, string(status))
		query += " WHERE estado = $1"
	}
	query += " ORDER BY id ASC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.JuntaVecinal{}
	for rows.Next() {
		var (
			j     models.JuntaVecinal
			state string
		)
		if err := rows.Scan(&j.ID, &j.Name, &j.Lat, &j.Lon, &state); err != nil {
			return nil, err
		}
		j.Status = models.JuntaStatus(state)
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *Store) GetJunta(ctx context.Context, id int64) (models.JuntaVecinal, error) {
	var (
		j     models.JuntaVecinal
		state string
	)
	err := s.Pool.QueryRow(ctx, `SELECT id, nombre, latitud, longitud, estado FROM juntas_vecinales WHERE id = $1`, id).
		Scan(&j.ID, &j.Name, &j.Lat, &j.Lon, &state)
	if err != nil {
		return models.JuntaVecinal{}, err
	}
	j.Status = models.JuntaStatus(state)
	return j, nil
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
