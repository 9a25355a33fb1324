package entity

import "time"

// Categorías de registro dinámico.
const (
	RecordTypeProduct  = "product"
	RecordTypeTransfer = "transfer"
)

// Estados de un traslado. Los traslados no se eliminan: anular es una mutación
// de estado para conservar la trazabilidad del movimiento.
const (
	TransferStatusActiva  = "ACTIVA"
	TransferStatusAnulada = "ANULADA"
)

// Record registro dinámico cuya forma la define el esquema de campos.
// Fields va indexado por el KeyName de cada FieldDefinition; los registros
// históricos pueden traer claves con otra capitalización o anidadas en un
// sub-objeto "details" (ver schema.ResolveField).
type Record struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Status    string         `json:"status,omitempty"` // solo traslados
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IsTransfer indica si el registro es un traslado (anulable, no eliminable).
func (r *Record) IsTransfer() bool {
	return r.Type == RecordTypeTransfer
}
