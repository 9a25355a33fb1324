package mh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fantasmadigital/nexus-erp/pkg/mh"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validación estructural de documentos de identidad salvadoreños.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDUI(t *testing.T) {
	// Dígito verificador módulo 10 con pesos 9..2 sobre los 8 primeros dígitos.
	assert.NoError(t, mh.ValidateDUI("04578963-1"))
	assert.NoError(t, mh.ValidateDUI("045789631"))

	assert.Error(t, mh.ValidateDUI("04578963-9"), "dígito verificador incorrecto")
	assert.Error(t, mh.ValidateDUI("1234567-8"), "menos de 9 dígitos")
	assert.Error(t, mh.ValidateDUI(""))
}

func TestValidateNIT(t *testing.T) {
	assert.NoError(t, mh.ValidateNIT("0614-290920-102-5"))
	assert.NoError(t, mh.ValidateNIT("06142909201025"))
	assert.Error(t, mh.ValidateNIT("0614-290920-102"))
}

func TestValidateDocumentNumber_RellenosSiempreValidos(t *testing.T) {
	assert.NoError(t, mh.ValidateDocumentNumber(mh.DocTypeConsumidorFinal, mh.PlaceholderConsumidorFinal))
	assert.NoError(t, mh.ValidateDocumentNumber(mh.DocTypeCreditoFiscal, mh.PlaceholderCreditoFiscal))
}

func TestValidateDocumentNumber_PorTipo(t *testing.T) {
	// Crédito fiscal exige NIT.
	assert.NoError(t, mh.ValidateDocumentNumber(mh.DocTypeCreditoFiscal, "0614-290920-102-5"))
	assert.Error(t, mh.ValidateDocumentNumber(mh.DocTypeCreditoFiscal, "04578963-1"))

	// Consumidor final acepta DUI o NIT.
	assert.NoError(t, mh.ValidateDocumentNumber(mh.DocTypeConsumidorFinal, "04578963-1"))
	assert.NoError(t, mh.ValidateDocumentNumber(mh.DocTypeConsumidorFinal, "0614-290920-102-5"))

	assert.Error(t, mh.ValidateDocumentNumber("99", "04578963-1"), "tipo desconocido")
	assert.Error(t, mh.ValidateDocumentNumber(mh.DocTypeConsumidorFinal, ""))
}

func TestPlaceholderForDocumentType(t *testing.T) {
	assert.Equal(t, mh.PlaceholderConsumidorFinal, mh.PlaceholderForDocumentType(mh.DocTypeConsumidorFinal))
	assert.Equal(t, mh.PlaceholderCreditoFiscal, mh.PlaceholderForDocumentType(mh.DocTypeExportacion))
	assert.Empty(t, mh.PlaceholderForDocumentType("99"))
}

func TestMunicipios(t *testing.T) {
	assert.True(t, mh.IsValidDepartment("San Salvador"))
	assert.False(t, mh.IsValidDepartment("Managua"))
	assert.True(t, mh.IsValidMunicipality("Santa Ana", "Metapán"))
	assert.False(t, mh.IsValidMunicipality("Santa Ana", "Soyapango"))
}
