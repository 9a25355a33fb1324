package mh

import (
	"fmt"
	"unicode"
)

// pesos para el dígito verificador del DUI (El Salvador). Se aplican a los 8
// primeros dígitos, de izquierda a derecha.
var duiWeights = [8]int{9, 8, 7, 6, 5, 4, 3, 2}

// ValidateDUI valida que el DUI (con o sin guion) tenga 9 dígitos y un dígito
// verificador correcto según el algoritmo módulo 10 del RNPN.
// value puede ser "04578963-1" o "045789631".
func ValidateDUI(value string) error {
	digits := extractDigits(value)
	if len(digits) != 9 {
		return fmt.Errorf("mh: DUI debe tener 9 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * duiWeights[i]
	}
	expected := byte('0' + (10-sum%10)%10)
	if digits[8] != expected {
		return fmt.Errorf("mh: dígito verificador del DUI inválido: esperado %c, recibido %c", expected, digits[8])
	}
	return nil
}

// ValidateNIT valida el largo del NIT salvadoreño (14 dígitos, formato
// 0000-000000-000-0). No se valida contra el registro del Ministerio de
// Hacienda; solo estructura.
func ValidateNIT(value string) error {
	digits := extractDigits(value)
	if len(digits) != 14 {
		return fmt.Errorf("mh: NIT debe tener 14 dígitos, se encontraron %d", len(digits))
	}
	return nil
}

// ValidateDocumentNumber valida el número según el tipo de DTE. Los números de
// relleno genéricos siempre son válidos (consumidor final sin identificar).
func ValidateDocumentNumber(docType, value string) error {
	if value == "" {
		return fmt.Errorf("mh: número de documento vacío")
	}
	if IsPlaceholderDocumentNumber(value) {
		return nil
	}
	switch docType {
	case DocTypeCreditoFiscal, DocTypeExportacion:
		return ValidateNIT(value)
	case DocTypeConsumidorFinal, DocTypeSujetoExcluido:
		// Consumidor final puede identificarse con DUI o NIT.
		if len(extractDigits(value)) == 14 {
			return ValidateNIT(value)
		}
		return ValidateDUI(value)
	default:
		return fmt.Errorf("mh: tipo de documento desconocido: %s", docType)
	}
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
