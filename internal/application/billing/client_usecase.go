package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
	"github.com/fantasmadigital/nexus-erp/pkg/mh"
)

// ClientUseCase resolución de clientes/receptores de facturación. La llave
// natural es el número de documento: registrar sobre un número existente
// actualiza el registro en sitio en lugar de duplicarlo.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// ApplyDocumentTypeDefaults aplica el número de relleno del tipo de DTE
// cuando el número actual está vacío o todavía es el relleno de otro tipo.
// Un número real digitado por el usuario jamás se pisa.
func ApplyDocumentTypeDefaults(docType, currentNumber string) string {
	placeholder := mh.PlaceholderForDocumentType(docType)
	if currentNumber == "" {
		return placeholder
	}
	if mh.IsPlaceholderDocumentNumber(currentNumber) && currentNumber != placeholder {
		return placeholder
	}
	return currentNumber
}

// resolveLocation aplica la cascada departamento → municipio: al elegir un
// departamento el municipio se limpia, salvo el departamento por defecto
// (San Salvador), que autoselecciona su cabecera.
func resolveLocation(department, municipality string) (string, string) {
	if department == "" {
		return mh.DefaultDepartment, mh.DefaultMunicipality
	}
	if municipality != "" && mh.IsValidMunicipality(department, municipality) {
		return department, municipality
	}
	if department == mh.DefaultDepartment {
		return department, mh.DefaultMunicipality
	}
	return department, ""
}

// FindOrCreate busca por número de documento exacto. Si existe, fusiona los
// campos entrantes sobre el registro (los valores existentes ganan cuando el
// payload no trae el campo) y lo devuelve; si no, inserta uno nuevo.
func (uc *ClientUseCase) FindOrCreate(in dto.ClientRequest) (*dto.ClientResponse, error) {
	if !mh.ValidDocumentTypes[in.DocumentType] {
		return nil, domain.ErrInvalidInput
	}
	in.DocumentNumber = ApplyDocumentTypeDefaults(in.DocumentType, in.DocumentNumber)
	if err := mh.ValidateDocumentNumber(in.DocumentType, in.DocumentNumber); err != nil {
		return nil, domain.ErrInvalidInput
	}
	in.Department, in.Municipality = resolveLocation(in.Department, in.Municipality)

	now := time.Now()
	existing, err := uc.repo.GetByDocumentNumber(in.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		mergeClient(existing, in)
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		return toClientResponse(existing), nil
	}

	c := &entity.Client{
		ID:               uuid.New().String(),
		DocumentType:     in.DocumentType,
		DocumentNumber:   in.DocumentNumber,
		NRC:              in.NRC,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Department:       in.Department,
		Municipality:     in.Municipality,
		Exempt:           in.Exempt,
		RetentionSubject: in.RetentionSubject,
		Exporter:         in.Exporter,
		Government:       in.Government,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// mergeClient fusiona el payload entrante sobre el cliente existente: solo los
// campos con valor entrante sobreescriben; las banderas fiscales se toman tal
// cual del payload (un checkbox desmarcado es un valor, no una ausencia).
func mergeClient(c *entity.Client, in dto.ClientRequest) {
	c.DocumentType = in.DocumentType
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.NRC != "" {
		c.NRC = in.NRC
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Address != "" {
		c.Address = in.Address
	}
	if in.Department != "" {
		c.Department = in.Department
		c.Municipality = in.Municipality
	}
	c.Exempt = in.Exempt
	c.RetentionSubject = in.RetentionSubject
	c.Exporter = in.Exporter
	c.Government = in.Government
}

// Get devuelve el cliente por ID.
func (uc *ClientUseCase) Get(id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List lista los clientes registrados.
func (uc *ClientUseCase) List() ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Delete elimina el cliente. Las facturas emitidas conservan su instantánea
// del receptor, por lo que el borrado no las afecta.
func (uc *ClientUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:               c.ID,
		DocumentType:     c.DocumentType,
		DocumentNumber:   c.DocumentNumber,
		NRC:              c.NRC,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		Department:       c.Department,
		Municipality:     c.Municipality,
		Exempt:           c.Exempt,
		RetentionSubject: c.RetentionSubject,
		Exporter:         c.Exporter,
		Government:       c.Government,
	}
}
