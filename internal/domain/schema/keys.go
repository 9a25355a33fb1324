// Package schema implementa el esquema dinámico de campos: reconciliación con
// los campos obligatorios, resolución de valores a través de formas históricas
// heterogéneas, validación/coerción de capturas por tipo de dato y formato
// tabular de solo lectura.
package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents elimina marcas diacríticas (NFD → quitar Mn → NFC), de modo que
// "Descripción" y "descripcion" comparen iguales.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey normaliza un nombre de campo para comparación: recorta
// espacios, baja a minúsculas y elimina acentos. La unicidad de KeyName dentro
// del esquema se evalúa sobre esta forma.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	out, _, err := transform.String(stripAccents, key)
	if err != nil {
		return key
	}
	return out
}

// SameKey compara dos nombres de campo en forma normalizada.
func SameKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}
