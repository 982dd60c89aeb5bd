package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type JuntaStatus string

const (
	JuntaEnabled  JuntaStatus = "habilitado"
	JuntaDisabled JuntaStatus = "deshabilitado"
	JuntaPending  JuntaStatus = "pendiente"
)

type JuntaVecinal struct {
	ID     int64       `json:"id"`
	Name   string      `json:"nombre"`
	Lat    float64     `json:"latitud"`
	Lon    float64     `json:"longitud"`
	Status JuntaStatus `json:"estado"`
}

func (j JuntaVecinal) Enabled() bool {
	return j.Status == JuntaEnabled
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type Response struct {
	ID          int64     `json:"id"`
	ComplaintID int64     `json:"publicacion_id"`
	CreatedAt   time.Time `json:"fecha"`
	Rating      int       `json:"evaluacion"`
	Description string    `json:"descripcion"`
}

// Complaint is a read-only view of a "publicacion". Related entities are
// pointers because the owning records may be missing or deleted.
type Complaint struct {
	ID          int64         `json:"id"`
	Code        string        `json:"codigo"`
	Title       string        `json:"titulo"`
	Description string        `json:"descripcion"`
	Junta       *JuntaVecinal `json:"junta_vecinal"`
	Category    *Category     `json:"categoria"`
	Department  *Department   `json:"departamento"`
	Status      *Status       `json:"situacion"`
	Priority    Priority      `json:"prioridad"`
	Lat         float64       `json:"latitud"`
	Lon         float64       `json:"longitud"`
	CreatedAt   time.Time     `json:"fecha_publicacion"`
	Responses   []Response    `json:"respuestas,omitempty"`
}

type ComplaintFilter struct {
	From         *time.Time
	To           *time.Time
	DepartmentID int64
	CategoryID   int64
	JuntaID      int64
	StatusID     int64
	Query        string
}
