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

// SchemaUseCase administra el esquema dinámico de campos del inventario.
// Toda lectura pasa por la reconciliación con los campos obligatorios, de modo
// que los consumidores siempre ven SKU, Nombre, Stock, Precio, Descuento y
// Bodega con su definición canónica aunque el almacén traiga otra cosa.
type SchemaUseCase struct {
	repo repository.SchemaRepository
}

// NewSchemaUseCase construye el caso de uso.
func NewSchemaUseCase(repo repository.SchemaRepository) *SchemaUseCase {
	return &SchemaUseCase{repo: repo}
}

// Get devuelve el esquema reconciliado. Sin esquema guardado devuelve solo los
// campos obligatorios con Configured=false (vista de configuración inicial).
func (uc *SchemaUseCase) Get() (*dto.SchemaResponse, error) {
	s, err := uc.load()
	if err != nil {
		return nil, err
	}
	return toSchemaResponse(s), nil
}

// AddField agrega un campo nuevo al esquema y persiste. Rechaza nombres
// duplicados (insensible a mayúsculas y acentos) y tipos desconocidos.
func (uc *SchemaUseCase) AddField(in dto.FieldDefinitionRequest) (*dto.SchemaResponse, error) {
	dt := entity.DataType(in.DataType)
	if !entity.ValidDataTypes[dt] {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.load()
	if err != nil {
		return nil, err
	}
	if schemadomain.HasKey(s, in.KeyName) {
		return nil, domain.ErrDuplicate
	}
	s.Fields = append(s.Fields, entity.FieldDefinition{
		ID:       uuid.New().String(),
		KeyName:  in.KeyName,
		DataType: dt,
		Required: in.Required,
	})
	return uc.persist(s)
}

// RemoveField elimina el campo indicado. Sobre un campo obligatorio es un
// no-op silencioso: el esquema se devuelve intacto, sin error.
func (uc *SchemaUseCase) RemoveField(id string) (*dto.SchemaResponse, error) {
	s, err := uc.load()
	if err != nil {
		return nil, err
	}
	for i, f := range s.Fields {
		if f.ID != id {
			continue
		}
		if schemadomain.IsMandatory(f) {
			return toSchemaResponse(s), nil
		}
		s.Fields = append(s.Fields[:i], s.Fields[i+1:]...)
		return uc.persist(s)
	}
	return nil, domain.ErrNotFound
}

// RenameField cambia el nombre visible de un campo. Renombrar un campo
// obligatorio se rechaza; un nombre ya ocupado por otro campo también.
func (uc *SchemaUseCase) RenameField(id, newKeyName string) (*dto.SchemaResponse, error) {
	s, err := uc.load()
	if err != nil {
		return nil, err
	}
	for i, f := range s.Fields {
		if f.ID != id {
			continue
		}
		if schemadomain.IsMandatory(f) {
			return nil, domain.ErrConflict
		}
		if !schemadomain.SameKey(f.KeyName, newKeyName) && schemadomain.HasKey(s, newKeyName) {
			return nil, domain.ErrDuplicate
		}
		s.Fields[i].KeyName = newKeyName
		return uc.persist(s)
	}
	return nil, domain.ErrNotFound
}

// Save reemplaza la lista completa de campos (asistente de configuración) y
// persiste. La reconciliación posterior garantiza los obligatorios.
func (uc *SchemaUseCase) Save(in []dto.FieldDefinitionRequest) (*dto.SchemaResponse, error) {
	var s entity.Schema
	for _, f := range in {
		dt := entity.DataType(f.DataType)
		if !entity.ValidDataTypes[dt] {
			return nil, domain.ErrInvalidInput
		}
		if schemadomain.HasKey(s, f.KeyName) {
			return nil, domain.ErrDuplicate
		}
		s.Fields = append(s.Fields, entity.FieldDefinition{
			ID:       uuid.New().String(),
			KeyName:  f.KeyName,
			DataType: dt,
			Required: f.Required,
		})
	}
	return uc.persist(schemadomain.Reconcile(s, entity.MandatoryFieldDefinitions()))
}

// Definitions devuelve las definiciones reconciliadas para consumo interno
// (validación de formularios, render tabular).
func (uc *SchemaUseCase) Definitions() ([]entity.FieldDefinition, error) {
	s, err := uc.load()
	if err != nil {
		return nil, err
	}
	return s.Fields, nil
}

func (uc *SchemaUseCase) load() (entity.Schema, error) {
	stored, err := uc.repo.Get()
	if err != nil {
		return entity.Schema{}, err
	}
	var s entity.Schema
	if stored != nil {
		s = *stored
	}
	return schemadomain.Reconcile(s, entity.MandatoryFieldDefinitions()), nil
}

// persist filtra nombres en blanco, estampa UpdatedAt y marca Configured=true.
// El primer guardado es la compuerta que habilita la vista operativa.
func (uc *SchemaUseCase) persist(s entity.Schema) (*dto.SchemaResponse, error) {
	clean := schemadomain.FilterPersistable(s, time.Now())
	if err := uc.repo.Save(&clean); err != nil {
		return nil, err
	}
	return toSchemaResponse(clean), nil
}

func toSchemaResponse(s entity.Schema) *dto.SchemaResponse {
	resp := &dto.SchemaResponse{
		Fields:     make([]dto.FieldDefinitionResponse, 0, len(s.Fields)),
		Configured: s.Configured,
		UpdatedAt:  s.UpdatedAt,
	}
	for _, f := range s.Fields {
		resp.Fields = append(resp.Fields, dto.FieldDefinitionResponse{
			ID:       f.ID,
			KeyName:  f.KeyName,
			DataType: string(f.DataType),
			Required: f.Required,
		})
	}
	return resp
}
