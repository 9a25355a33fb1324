package dto

import "time"

// FieldDefinitionRequest definición de campo en bodies de creación/edición.
type FieldDefinitionRequest struct {
	KeyName  string `json:"key_name" validate:"required,max=60"`
	DataType string `json:"data_type" validate:"required,oneof=text number date longtext image boolean price discount"`
	Required bool   `json:"required"`
}

// FieldDefinitionResponse definición de campo en respuestas.
type FieldDefinitionResponse struct {
	ID       string `json:"id"`
	KeyName  string `json:"key_name"`
	DataType string `json:"data_type"`
	Required bool   `json:"required"`
}

// SchemaResponse esquema completo ya reconciliado con los campos obligatorios.
type SchemaResponse struct {
	Fields     []FieldDefinitionResponse `json:"fields"`
	Configured bool                      `json:"configured"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

// RenameFieldRequest body para PATCH /api/schema/fields/:id.
type RenameFieldRequest struct {
	KeyName string `json:"key_name" validate:"required,max=60"`
}
