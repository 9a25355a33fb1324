package schema

import (
	"time"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// Reconcile fusiona un esquema almacenado con el conjunto de campos
// obligatorios: todo campo guardado cuyo KeyName coincida (normalizado) con un
// obligatorio se normaliza al DataType canónico y required=true, aunque una
// versión anterior lo haya guardado distinto; los obligatorios ausentes se
// agregan al final. Si el almacenamiento trae dos variantes de capitalización
// o espacios del mismo nombre, la primera aparición gana y las demás se
// descartan. El orden de los campos del usuario se conserva.
func Reconcile(stored entity.Schema, mandatory []entity.FieldDefinition) entity.Schema {
	out := entity.Schema{
		Configured: stored.Configured,
		UpdatedAt:  stored.UpdatedAt,
		Fields:     make([]entity.FieldDefinition, 0, len(stored.Fields)+len(mandatory)),
	}

	seen := make(map[string]bool, len(stored.Fields)+len(mandatory))
	for _, f := range stored.Fields {
		if m, ok := mandatoryFor(f.KeyName, mandatory); ok {
			f.KeyName = m.KeyName
			f.DataType = m.DataType
			f.Required = true
			if f.ID == "" {
				f.ID = m.ID
			}
		}
		norm := NormalizeKey(f.KeyName)
		if norm != "" && seen[norm] {
			continue
		}
		seen[norm] = true
		out.Fields = append(out.Fields, f)
	}
	for _, m := range mandatory {
		if !seen[NormalizeKey(m.KeyName)] {
			out.Fields = append(out.Fields, m)
		}
	}
	return out
}

func mandatoryFor(keyName string, mandatory []entity.FieldDefinition) (entity.FieldDefinition, bool) {
	for _, m := range mandatory {
		if SameKey(keyName, m.KeyName) {
			return m, true
		}
	}
	return entity.FieldDefinition{}, false
}

// IsMandatory indica si la definición corresponde a un campo obligatorio.
func IsMandatory(def entity.FieldDefinition) bool {
	_, ok := mandatoryFor(def.KeyName, entity.MandatoryFieldDefinitions())
	return ok
}

// HasKey indica si el esquema ya contiene un campo con ese nombre (normalizado).
func HasKey(s entity.Schema, keyName string) bool {
	for _, f := range s.Fields {
		if SameKey(f.KeyName, keyName) {
			return true
		}
	}
	return false
}

// FilterPersistable descarta entradas con KeyName en blanco antes de guardar
// y estampa UpdatedAt. Guardar marca el esquema como configurado: es la
// compuerta que cambia el inventario de la vista de configuración a la
// operativa.
func FilterPersistable(s entity.Schema, now time.Time) entity.Schema {
	out := entity.Schema{Configured: true, UpdatedAt: now}
	for _, f := range s.Fields {
		if NormalizeKey(f.KeyName) == "" {
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}
