package dto

import "time"

// CreateRecordRequest body para POST /api/records. Fields va con las claves
// del esquema; el caso de uso valida y coerciona según el tipo de cada campo.
type CreateRecordRequest struct {
	Type   string         `json:"type" validate:"required,oneof=product transfer"`
	Fields map[string]any `json:"fields" validate:"required"`
}

// UpdateRecordRequest body para PUT /api/records/:id (fusión parcial).
type UpdateRecordRequest struct {
	Fields map[string]any `json:"fields" validate:"required"`
}

// RecordResponse registro dinámico en respuestas.
type RecordResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Status    string         `json:"status,omitempty"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableResponse vista tabular de solo lectura derivada del esquema.
type TableResponse struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
