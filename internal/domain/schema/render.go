package schema

import (
	"strconv"
	"strings"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// Formato tabular de solo lectura. La misma tabla la consumen el listado de
// inventario y el de ítems de traslado: cabecera tomada del esquema y celdas
// formateadas según el tipo de dato de cada columna.

const emptyCell = "—"

// Table vista tabular renderizada de un conjunto de registros.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RenderTable interpreta el esquema como tabla: una columna por definición,
// una fila por registro, valores resueltos vía la cadena de alias.
func RenderTable(defs []entity.FieldDefinition, records []*entity.Record) Table {
	t := Table{Headers: make([]string, 0, len(defs)), Rows: make([][]string, 0, len(records))}
	for _, def := range defs {
		t.Headers = append(t.Headers, def.KeyName)
	}
	for _, rec := range records {
		row := make([]string, 0, len(defs))
		for _, def := range defs {
			v, _ := ResolveField(rec.Fields, def.KeyName)
			row = append(row, FormatCell(def.DataType, v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FormatCell formatea un valor para celda según el tipo de dato: moneda con
// dos decimales, porcentaje, Sí/No, miniatura o marcador para imágenes. El
// redondeo a 2 decimales ocurre aquí, en presentación, nunca antes.
func FormatCell(dt entity.DataType, value any) string {
	if value == nil {
		return emptyCell
	}
	switch dt {
	case entity.FieldPrice:
		d, err := toDecimal(value)
		if err != nil {
			return emptyCell
		}
		return "$" + d.StringFixed(2)

	case entity.FieldDiscount:
		d, err := toDecimal(value)
		if err != nil {
			return emptyCell
		}
		return d.StringFixed(2) + "%"

	case entity.FieldNumber:
		d, err := toDecimal(value)
		if err != nil {
			return emptyCell
		}
		return d.String()

	case entity.FieldBoolean:
		b, ok := value.(bool)
		if !ok {
			if s, isStr := value.(string); isStr {
				b = NormalizeKey(s) == "si" || s == "true"
			}
		}
		if b {
			return "Sí"
		}
		return "No"

	case entity.FieldImage:
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return emptyCell
		}
		return "[imagen]"

	default:
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return emptyCell
			}
			return v
		case bool:
			return strconv.FormatBool(v)
		default:
			d, err := toDecimal(value)
			if err != nil {
				return emptyCell
			}
			return d.String()
		}
	}
}
