package schema

// Resolución de valores a través de formas históricas heterogéneas.
//
// Los registros pueden venir de versiones viejas del esquema o de campos
// renombrados por el usuario: la misma propiedad lógica aparece con distinta
// capitalización, con otro nombre físico o anidada en un sub-objeto "details".
// La política de alias vive centralizada en esta tabla en lugar de cadenas de
// fallback ad hoc en cada consumidor.

// fieldAliases nombre lógico (normalizado) → claves físicas aceptadas, en
// orden de prioridad. La clave exacta siempre se prueba primero.
var fieldAliases = map[string][]string{
	"sku":       {"sku", "SKU", "codigo", "código", "code"},
	"nombre":    {"nombre", "Nombre", "name", "producto", "titulo", "título"},
	"stock":     {"stock", "Stock", "existencias", "cantidad"},
	"precio":    {"precio", "Precio", "price", "precio_venta"},
	"descuento": {"descuento", "Descuento", "discount"},
	"bodega":    {"bodega", "Bodega", "warehouse", "almacen", "almacén"},
	"imagen":    {"imagen", "Imagen", "image", "foto"},
}

// detailsKeys sub-objetos anidados donde versiones viejas guardaban campos.
var detailsKeys = []string{"details", "detalles"}

// ResolveField resuelve el valor de un nombre lógico sobre el mapa de campos
// de un registro: clave exacta → variantes de alias → coincidencia normalizada
// (insensible a mayúsculas/acentos) → sub-objeto "details". Nunca falla: una
// búsqueda sin resultado devuelve nil y found=false.
func ResolveField(fields map[string]any, logicalName string) (any, bool) {
	if len(fields) == 0 {
		return nil, false
	}

	// 1) Clave exacta.
	if v, ok := fields[logicalName]; ok {
		return v, true
	}

	// 2) Alias conocidos del nombre lógico.
	norm := NormalizeKey(logicalName)
	for _, alias := range fieldAliases[norm] {
		if v, ok := fields[alias]; ok {
			return v, true
		}
	}

	// 3) Cualquier clave que normalice igual.
	for k, v := range fields {
		if NormalizeKey(k) == norm {
			return v, true
		}
	}

	// 4) Sub-objeto anidado de formas históricas.
	for _, dk := range detailsKeys {
		if nested, ok := fields[dk].(map[string]any); ok {
			if v, found := ResolveField(nested, logicalName); found {
				return v, true
			}
		}
	}

	return nil, false
}

// ResolveString resuelve el campo y lo devuelve como string (cadena vacía si
// no existe o no es texto).
func ResolveString(fields map[string]any, logicalName string) string {
	v, ok := ResolveField(fields, logicalName)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
