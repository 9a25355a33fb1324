package entity

import "time"

// DataType tipo de dato de un campo dinámico del esquema de inventario.
// Determina el control de captura, la validación y el formato de celda.
type DataType string

const (
	FieldText     DataType = "text"
	FieldNumber   DataType = "number"
	FieldDate     DataType = "date"
	FieldLongText DataType = "longtext"
	FieldImage    DataType = "image"
	FieldBoolean  DataType = "boolean"
	FieldPrice    DataType = "price"
	FieldDiscount DataType = "discount" // porcentaje de descuento (0-100)
)

// ValidDataTypes tipos de dato aceptados en definiciones de campo.
var ValidDataTypes = map[DataType]bool{
	FieldText: true, FieldNumber: true, FieldDate: true, FieldLongText: true,
	FieldImage: true, FieldBoolean: true, FieldPrice: true, FieldDiscount: true,
}

// FieldDefinition definición de un campo dinámico autorado por el usuario.
// KeyName es único dentro del esquema (insensible a mayúsculas y acentos).
type FieldDefinition struct {
	ID       string   `json:"id"`
	KeyName  string   `json:"key_name"`
	DataType DataType `json:"data_type"`
	Required bool     `json:"required"`
}

// Schema esquema dinámico que da forma a los registros de producto.
// Configured pasa a true con el primer guardado y habilita la vista operativa
// del inventario (antes de eso se muestra el asistente de configuración).
type Schema struct {
	Fields     []FieldDefinition `json:"fields"`
	Configured bool              `json:"configured"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Campos obligatorios del esquema de productos. No se pueden eliminar ni
// renombrar, y su tipo se reconcilia al cargar aunque una versión anterior del
// esquema los haya guardado distinto.
const (
	MandatorySKU       = "SKU"
	MandatoryNombre    = "Nombre"
	MandatoryStock     = "Stock"
	MandatoryPrecio    = "Precio"
	MandatoryDescuento = "Descuento"
	MandatoryBodega    = "Bodega"
)

// MandatoryFieldDefinitions devuelve la definición canónica de los campos
// obligatorios. Siempre una copia nueva: los llamadores pueden mutarla.
func MandatoryFieldDefinitions() []FieldDefinition {
	return []FieldDefinition{
		{ID: "campo-sku", KeyName: MandatorySKU, DataType: FieldText, Required: true},
		{ID: "campo-nombre", KeyName: MandatoryNombre, DataType: FieldText, Required: true},
		{ID: "campo-stock", KeyName: MandatoryStock, DataType: FieldNumber, Required: true},
		{ID: "campo-precio", KeyName: MandatoryPrecio, DataType: FieldPrice, Required: true},
		{ID: "campo-descuento", KeyName: MandatoryDescuento, DataType: FieldDiscount, Required: true},
		{ID: "campo-bodega", KeyName: MandatoryBodega, DataType: FieldText, Required: true},
	}
}
