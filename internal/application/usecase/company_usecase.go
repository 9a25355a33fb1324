package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
	"github.com/fantasmadigital/nexus-erp/pkg/mh"
)

// CompanyUseCase administra el registro único del emisor.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve los datos del emisor; ErrNotFound si aún no se configuran.
func (uc *CompanyUseCase) Get() (*dto.CompanyResponse, error) {
	c, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(c), nil
}

// Save crea o reemplaza los datos del emisor. El NIT se valida contra el
// formato de Hacienda; departamento y municipio contra el catálogo.
func (uc *CompanyUseCase) Save(in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if err := mh.ValidateNIT(in.NIT); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Department != "" && !mh.IsValidDepartment(in.Department) {
		return nil, domain.ErrInvalidInput
	}
	if in.Department != "" && in.Municipality != "" && !mh.IsValidMunicipality(in.Department, in.Municipality) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	existing, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	c := &entity.Company{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}
	if existing != nil {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	}
	c.Name = in.Name
	c.NIT = in.NIT
	c.NRC = in.NRC
	c.Activity = in.Activity
	c.Address = in.Address
	c.Department = in.Department
	c.Municipality = in.Municipality
	c.Phone = in.Phone
	c.Email = in.Email
	c.UpdatedAt = now

	if err := uc.repo.Save(c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Name:         c.Name,
		NIT:          c.NIT,
		NRC:          c.NRC,
		Activity:     c.Activity,
		Department:   c.Department,
		Municipality: c.Municipality,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
	}
}
