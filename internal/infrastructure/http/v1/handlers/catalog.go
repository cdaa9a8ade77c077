package handlers

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/catalogs/itemgroup"
	"storefront/internal/domain/catalogs/lead"
	"storefront/internal/domain/pricing"
	"storefront/internal/infrastructure/http/v1/dto"
)

// CatalogHandler serves the catalog listing endpoints: customers, priced
// items, item groups and leads.
type CatalogHandler struct {
	*BaseHandler
	customers  *customer.Service
	items      *item.Service
	pricing    *pricing.Service
	itemGroups itemgroup.Repository
	leads      lead.Repository
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(
	customers *customer.Service,
	items *item.Service,
	pricingSvc *pricing.Service,
	itemGroups itemgroup.Repository,
	leads lead.Repository,
) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(),
		customers:   customers,
		items:       items,
		pricing:     pricingSvc,
		itemGroups:  itemGroups,
		leads:       leads,
	}
}

// Customers handles GET /customers.
func (h *CatalogHandler) Customers(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	f, err := query.ToListFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.customers.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomers(result.Items))
}

// Items handles GET /items?item_group=. Lists sellable items of a group
// with their price-list rates attached.
func (h *CatalogHandler) Items(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	f, err := query.ToListFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.items.ListForSale(c.Request.Context(), c.Query("item_group"), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	priced, err := h.pricing.ResolvePrices(c.Request.Context(), result.Items)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPricedItems(priced))
}

// ItemGroups handles GET /item-groups.
func (h *CatalogHandler) ItemGroups(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	f, err := query.ToListFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.itemGroups.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromItemGroups(result.Items))
}

// Leads handles GET /leads.
func (h *CatalogHandler) Leads(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	f, err := query.ToListFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.leads.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLeads(result.Items))
}
