package schema

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// FieldError error de validación a nivel de campo. Se devuelve al formulario
// para mostrarse bajo el campo ofensor; nunca se propaga como excepción.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const dateLayout = "2006-01-02"

// ValidateAndCoerce interpreta el esquema sobre una captura de formulario:
// valida requeridos, coerciona cada valor según el DataType de su definición y
// devuelve el mapa listo para persistir. previous trae los campos del registro
// cuando se edita; para imágenes sin archivo nuevo se conserva el valor
// almacenado sin cambios.
//
// Las claves de input que no pertenecen al esquema se descartan: la forma del
// registro la dicta el esquema, no la captura.
func ValidateAndCoerce(defs []entity.FieldDefinition, input, previous map[string]any) (map[string]any, []FieldError) {
	out := make(map[string]any, len(defs))
	var errs []FieldError

	for _, def := range defs {
		raw, present := input[def.KeyName]
		if !present {
			// Tolerar capturas con la clave en otra forma.
			raw, present = ResolveField(input, def.KeyName)
		}

		if def.DataType == entity.FieldImage {
			v, err := coerceImage(raw, previous[def.KeyName])
			if err != nil {
				errs = append(errs, FieldError{Field: def.KeyName, Message: err.Error()})
				continue
			}
			if v == "" && def.Required {
				errs = append(errs, FieldError{Field: def.KeyName, Message: "es requerido"})
				continue
			}
			if v != "" {
				out[def.KeyName] = v
			}
			continue
		}

		if !present || isEmpty(raw) {
			if def.Required {
				errs = append(errs, FieldError{Field: def.KeyName, Message: "es requerido"})
			}
			continue
		}

		v, err := coerceValue(def.DataType, raw)
		if err != nil {
			errs = append(errs, FieldError{Field: def.KeyName, Message: err.Error()})
			continue
		}
		out[def.KeyName] = v
	}

	return out, errs
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func coerceValue(dt entity.DataType, raw any) (any, error) {
	switch dt {
	case entity.FieldText, entity.FieldLongText:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("debe ser texto")
		}
		return strings.TrimSpace(s), nil

	case entity.FieldNumber:
		d, err := toDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("debe ser un número")
		}
		f, _ := d.Float64()
		return f, nil

	case entity.FieldPrice:
		d, err := toDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("debe ser un monto")
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("no puede ser negativo")
		}
		return d, nil

	case entity.FieldDiscount:
		d, err := toDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("debe ser un porcentaje")
		}
		if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("debe estar entre 0 y 100")
		}
		return d, nil

	case entity.FieldBoolean:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			switch NormalizeKey(v) {
			case "true", "si", "1":
				return true, nil
			case "false", "no", "0", "":
				return false, nil
			}
		}
		return nil, fmt.Errorf("debe ser sí o no")

	case entity.FieldDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("debe ser una fecha")
		}
		s = strings.TrimSpace(s)
		if _, err := time.Parse(dateLayout, s); err != nil {
			return nil, fmt.Errorf("fecha inválida (formato %s)", dateLayout)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("tipo de dato desconocido: %s", dt)
	}
}

// coerceImage convierte el archivo capturado a su representación persistible
// (data URI base64). Sin archivo nuevo se retiene el valor anterior tal cual.
func coerceImage(raw, previous any) (string, error) {
	switch v := raw.(type) {
	case nil:
		s, _ := previous.(string)
		return s, nil
	case []byte:
		if len(v) == 0 {
			s, _ := previous.(string)
			return s, nil
		}
		return "data:image/*;base64," + base64.StdEncoding.EncodeToString(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			s, _ := previous.(string)
			return s, nil
		}
		// Ya viene codificada (edición sin cambio de archivo o captura previa).
		return v, nil
	default:
		return "", fmt.Errorf("imagen inválida")
	}
}

// toDecimal acepta las representaciones numéricas que produce un formulario o
// una deserialización JSON.
func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	default:
		return decimal.Zero, fmt.Errorf("valor no numérico")
	}
}
