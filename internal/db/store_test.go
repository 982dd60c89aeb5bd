package db

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/juntas_vecinales/backend/internal/models"
)

func TestBuildComplaintQueryNoFilter(t *testing.T) {
	q, args := buildComplaintQuery(models.ComplaintFilter{})
	if strings.Contains(q, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %s", q)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.HasSuffix(q, "ORDER BY p.fecha_publicacion ASC, p.id ASC") {
		t.Fatalf("expected stable ordering, got %s", q)
	}
}

func TestBuildComplaintQueryAllFilters(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	q, args := buildComplaintQuery(models.ComplaintFilter{
		From:         &from,
		To:           &to,
		DepartmentID: 3,
		CategoryID:   4,
		JuntaID:      5,
		StatusID:     6,
		Query:        "  poste ",
	})
	for _, frag := range []string{
		"p.fecha_publicacion >= $1",
		"p.fecha_publicacion < $2",
		"p.departamento_id = $3",
		"p.categoria_id = $4",
		"p.junta_vecinal_id = $5",
		"p.situacion_id = $6",
		"p.titulo ILIKE $7",
	} {
		if !strings.Contains(q, frag) {
			t.Fatalf("expected %q in query %s", frag, q)
		}
	}
	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d", len(args))
	}
	if args[6] != "%poste%" {
		t.Fatalf("expected trimmed like pattern, got %v", args[6])
	}
}

func TestComplaintRowNullColumns(t *testing.T) {
	r := complaintRow{id: 12}
	if len(r.dest()) != 19 {
		t.Fatalf("expected 19 scan targets, got %d", len(r.dest()))
	}
	c := r.complaint()
	if c.ID != 12 || c.Code != "" || c.Title != "" || c.Lat != 0 || !c.CreatedAt.IsZero() {
		t.Fatalf("unexpected complaint from null row: %+v", c)
	}
	if c.Junta != nil || c.Category != nil || c.Department != nil || c.Status != nil {
		t.Fatalf("expected nil relations, got %+v", c)
	}

	title := "Luminaria apagada"
	lat := -39.81
	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	juntaID := int64(4)
	statusID := int64(1)
	r = complaintRow{id: 13, title: &title, lat: &lat, createdAt: &created, juntaID: &juntaID, statusID: &statusID}
	c = r.complaint()
	if c.Title != title || c.Lat != lat || !c.CreatedAt.Equal(created) {
		t.Fatalf("unexpected complaint: %+v", c)
	}
	if c.Junta == nil || c.Junta.ID != 4 || c.Status == nil || c.Status.ID != 1 {
		t.Fatalf("unexpected relations: %+v", c)
	}
}

func TestListComplaintsIntegration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	store, err := New(context.Background(), url)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	defer store.Close()

	complaints, err := store.ListComplaints(context.Background(), models.ComplaintFilter{})
	if err != nil {
		t.Fatalf("list complaints: %v", err)
	}
	for _, c := range complaints {
		for _, r := range c.Responses {
			if r.ComplaintID != c.ID {
				t.Fatalf("response %d attached to wrong complaint %d", r.ID, c.ID)
			}
		}
	}
}
