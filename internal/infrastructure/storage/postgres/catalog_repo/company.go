package catalog_repo

import (
	"storefront/internal/domain/catalogs/company"
	"storefront/internal/infrastructure/storage/postgres"
)

const companiesTable = "companies"

// CompanyRepo implements company.Repository.
type CompanyRepo struct {
	*BaseCatalogRepo[*company.Company]
}

// NewCompanyRepo creates the company repository.
func NewCompanyRepo(txm *postgres.TxManager) *CompanyRepo {
	return &CompanyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			companiesTable,
			postgres.ExtractDBColumns[company.Company](),
			nil,
			func() *company.Company { return &company.Company{} },
		),
	}
}
