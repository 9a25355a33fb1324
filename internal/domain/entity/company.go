package entity

import "time"

// Company datos del emisor (empresa). Registro único: se usa como cabecera de
// los documentos emitidos y del PDF.
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TradeName    string    `json:"trade_name,omitempty"`
	NIT          string    `json:"nit"`
	NRC          string    `json:"nrc"`
	Activity     string    `json:"activity,omitempty"` // giro o actividad económica
	Address      string    `json:"address,omitempty"`
	Department   string    `json:"department,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
