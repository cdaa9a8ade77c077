package catalog_repo

import (
	"storefront/internal/domain/catalogs/lead"
	"storefront/internal/infrastructure/storage/postgres"
)

const leadsTable = "leads"

// LeadRepo implements lead.Repository.
type LeadRepo struct {
	*BaseCatalogRepo[*lead.Lead]
}

// NewLeadRepo creates the lead repository.
func NewLeadRepo(txm *postgres.TxManager) *LeadRepo {
	return &LeadRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			leadsTable,
			postgres.ExtractDBColumns[lead.Lead](),
			nil,
			func() *lead.Lead { return &lead.Lead{} },
		),
	}
}
