package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para el emisor (registro único).
type CompanyRepository interface {
	Get() (*entity.Company, error)
	Save(company *entity.Company) error
}
