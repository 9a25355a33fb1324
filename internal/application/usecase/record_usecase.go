package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
	schemadomain "github.com/fantasmadigital/nexus-erp/internal/domain/schema"
)

// RecordUseCase opera los registros dinámicos (productos y traslados). Toda
// captura pasa por el esquema: validación de requeridos y coerción por tipo
// antes de tocar el almacén. Los errores de campo regresan al formulario como
// lista, nunca como error de sistema.
type RecordUseCase struct {
	records repository.RecordRepository
	schema  *SchemaUseCase
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(records repository.RecordRepository, schema *SchemaUseCase) *RecordUseCase {
	return &RecordUseCase{records: records, schema: schema}
}

// Create valida la captura contra el esquema y antepone el registro nuevo.
// Los traslados nacen en estado ACTIVA.
func (uc *RecordUseCase) Create(in dto.CreateRecordRequest) (*dto.RecordResponse, []schemadomain.FieldError, error) {
	defs, err := uc.schema.Definitions()
	if err != nil {
		return nil, nil, err
	}
	fields, ferrs := schemadomain.ValidateAndCoerce(defs, in.Fields, nil)
	if len(ferrs) > 0 {
		return nil, ferrs, nil
	}

	now := time.Now()
	rec := &entity.Record{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Fields:    fields,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if rec.IsTransfer() {
		rec.Status = entity.TransferStatusActiva
	}
	if err := uc.records.Create(rec); err != nil {
		return nil, nil, err
	}
	return toRecordResponse(rec), nil, nil
}

// Update fusiona los campos capturados sobre el registro existente. Para
// imágenes sin archivo nuevo se conserva el valor guardado.
func (uc *RecordUseCase) Update(id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, []schemadomain.FieldError, error) {
	rec, err := uc.records.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, domain.ErrNotFound
	}
	defs, err := uc.schema.Definitions()
	if err != nil {
		return nil, nil, err
	}
	fields, ferrs := schemadomain.ValidateAndCoerce(defs, in.Fields, rec.Fields)
	if len(ferrs) > 0 {
		return nil, ferrs, nil
	}
	if err := uc.records.Update(id, fields); err != nil {
		return nil, nil, err
	}
	rec, err = uc.records.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	return toRecordResponse(rec), nil, nil
}

// Get devuelve el registro por ID.
func (uc *RecordUseCase) Get(id string) (*dto.RecordResponse, error) {
	rec, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toRecordResponse(rec), nil
}

// List lista los registros de una categoría (más recientes primero).
func (uc *RecordUseCase) List(recordType string) ([]*dto.RecordResponse, error) {
	list, err := uc.records.ListByType(recordType)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RecordResponse, 0, len(list))
	for _, rec := range list {
		out = append(out, toRecordResponse(rec))
	}
	return out, nil
}

// Table renderiza los registros de una categoría como tabla de solo lectura
// dirigida por el esquema (moneda, porcentaje, Sí/No, marcador de imagen).
func (uc *RecordUseCase) Table(recordType string) (*dto.TableResponse, error) {
	defs, err := uc.schema.Definitions()
	if err != nil {
		return nil, err
	}
	list, err := uc.records.ListByType(recordType)
	if err != nil {
		return nil, err
	}
	t := schemadomain.RenderTable(defs, list)
	return &dto.TableResponse{Headers: t.Headers, Rows: t.Rows}, nil
}

// Delete elimina el registro de forma definitiva. Los traslados no se
// eliminan: se anulan con VoidTransfer para conservar trazabilidad.
func (uc *RecordUseCase) Delete(id string) error {
	rec, err := uc.records.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	if rec.IsTransfer() {
		return domain.ErrConflict
	}
	return uc.records.Delete(id)
}

// VoidTransfer anula un traslado (mutación de estado, no borrado).
func (uc *RecordUseCase) VoidTransfer(id string) (*dto.RecordResponse, error) {
	rec, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if !rec.IsTransfer() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.records.UpdateStatus(id, entity.TransferStatusAnulada); err != nil {
		return nil, err
	}
	rec.Status = entity.TransferStatusAnulada
	return toRecordResponse(rec), nil
}

func toRecordResponse(r *entity.Record) *dto.RecordResponse {
	return &dto.RecordResponse{
		ID:        r.ID,
		Type:      r.Type,
		Status:    r.Status,
		Fields:    r.Fields,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
