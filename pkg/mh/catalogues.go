// Package mh contiene catálogos y validaciones alineados a la normativa de
// Documentos Tributarios Electrónicos (DTE) del Ministerio de Hacienda de
// El Salvador.
package mh

// =============================================================================
// Tipos de Documento Tributario Electrónico (catálogo CAT-002)
// Solo se modelan los tipos emitidos por el sistema; el resto del catálogo
// queda fuera de alcance (no hay integración con el Ministerio de Hacienda).
// =============================================================================

const (
	DocTypeConsumidorFinal = "01" // Factura (consumidor final)
	DocTypeCreditoFiscal   = "03" // Comprobante de crédito fiscal
	DocTypeExportacion     = "11" // Factura de exportación
	DocTypeSujetoExcluido  = "14" // Factura de sujeto excluido
)

// ValidDocumentTypes tipos de DTE que el sistema puede emitir.
var ValidDocumentTypes = map[string]bool{
	DocTypeConsumidorFinal: true,
	DocTypeCreditoFiscal:   true,
	DocTypeExportacion:     true,
	DocTypeSujetoExcluido:  true,
}

// DocumentTypeName nombre legible del tipo de documento.
func DocumentTypeName(code string) string {
	switch code {
	case DocTypeConsumidorFinal:
		return "Factura Consumidor Final"
	case DocTypeCreditoFiscal:
		return "Comprobante de Crédito Fiscal"
	case DocTypeExportacion:
		return "Factura de Exportación"
	case DocTypeSujetoExcluido:
		return "Factura de Sujeto Excluido"
	default:
		return "Documento"
	}
}

// =============================================================================
// Números de documento de relleno por tipo de DTE.
// Al cambiar el tipo de documento en el formulario de receptor, el número se
// precarga con el valor genérico del tipo SOLO si el valor actual está vacío o
// todavía es el relleno de otro tipo (nunca se pisa un número real digitado).
// =============================================================================

const (
	PlaceholderConsumidorFinal = "00000000-0"        // DUI genérico
	PlaceholderCreditoFiscal   = "0000-000000-000-0" // NIT genérico
	PlaceholderExportacion     = "0000-000000-000-0"
	PlaceholderSujetoExcluido  = "00000000-0"
)

// PlaceholderForDocumentType devuelve el número de documento genérico del tipo.
func PlaceholderForDocumentType(docType string) string {
	switch docType {
	case DocTypeCreditoFiscal, DocTypeExportacion:
		return PlaceholderCreditoFiscal
	case DocTypeConsumidorFinal, DocTypeSujetoExcluido:
		return PlaceholderConsumidorFinal
	default:
		return ""
	}
}

// IsPlaceholderDocumentNumber indica si el valor es un relleno de cualquier tipo.
func IsPlaceholderDocumentNumber(value string) bool {
	return value == PlaceholderConsumidorFinal || value == PlaceholderCreditoFiscal
}

// =============================================================================
// Condición de la operación (catálogo CAT-016)
// =============================================================================

const (
	OperationContado = "1" // Contado
	OperationCredito = "2" // A crédito
	OperationOtro    = "3" // Otro
)

// ValidOperationConditions condiciones de operación aceptadas.
var ValidOperationConditions = map[string]bool{
	OperationContado: true,
	OperationCredito: true,
	OperationOtro:    true,
}

// =============================================================================
// Formas de pago (catálogo CAT-017) - códigos de uso frecuente
// =============================================================================

const (
	PaymentBilletes       = "01" // Billetes y monedas
	PaymentTarjetaDebito  = "02" // Tarjeta débito
	PaymentTarjetaCredito = "03" // Tarjeta crédito
	PaymentCheque         = "04" // Cheque
	PaymentTransferencia  = "05" // Transferencia / depósito bancario
)

// ValidPaymentMethods formas de pago aceptadas.
var ValidPaymentMethods = map[string]bool{
	PaymentBilletes:       true,
	PaymentTarjetaDebito:  true,
	PaymentTarjetaCredito: true,
	PaymentCheque:         true,
	PaymentTransferencia:  true,
}

// =============================================================================
// Departamentos y municipios (catálogos CAT-012 / CAT-013, subconjunto)
// DefaultDepartment/DefaultMunicipality gobiernan la cascada del formulario de
// receptor: al elegir departamento se limpia el municipio, salvo que el
// departamento sea el de por defecto, que autoselecciona su cabecera.
// =============================================================================

const (
	DefaultDepartment   = "San Salvador"
	DefaultMunicipality = "San Salvador"
)

// Municipalities municipios por departamento (subconjunto operativo).
var Municipalities = map[string][]string{
	"San Salvador": {"San Salvador", "Soyapango", "Mejicanos", "Apopa", "Santa Tecla", "Ilopango", "Ciudad Delgado"},
	"La Libertad":  {"Santa Tecla", "Antiguo Cuscatlán", "Colón", "Quezaltepeque"},
	"Santa Ana":    {"Santa Ana", "Metapán", "Chalchuapa"},
	"San Miguel":   {"San Miguel", "Chinameca", "Moncagua"},
	"Sonsonate":    {"Sonsonate", "Izalco", "Acajutla"},
	"Usulután":     {"Usulután", "Jucuapa", "Santiago de María"},
	"La Paz":       {"Zacatecoluca", "Olocuilta", "San Luis Talpa"},
	"Ahuachapán":   {"Ahuachapán", "Atiquizaya", "Tacuba"},
	"Cuscatlán":    {"Cojutepeque", "Suchitoto"},
	"Chalatenango": {"Chalatenango", "Nueva Concepción"},
	"Cabañas":      {"Sensuntepeque", "Ilobasco"},
	"San Vicente":  {"San Vicente", "Apastepeque"},
	"Morazán":      {"San Francisco Gotera", "Jocoro"},
	"La Unión":     {"La Unión", "Santa Rosa de Lima"},
}

// IsValidDepartment indica si el departamento existe en el catálogo.
func IsValidDepartment(department string) bool {
	_, ok := Municipalities[department]
	return ok
}

// IsValidMunicipality indica si el municipio pertenece al departamento.
func IsValidMunicipality(department, municipality string) bool {
	for _, m := range Municipalities[department] {
		if m == municipality {
			return true
		}
	}
	return false
}
