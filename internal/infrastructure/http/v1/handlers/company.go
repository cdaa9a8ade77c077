package handlers

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/domain/catalogs/company"
	"storefront/internal/domain/defaults"
	"storefront/internal/infrastructure/http/v1/dto"
)

// CompanyHandler serves the company profile endpoint.
type CompanyHandler struct {
	*BaseHandler
	companies company.Repository
	defaults  *defaults.Service
}

// NewCompanyHandler creates a company handler.
func NewCompanyHandler(companies company.Repository, def *defaults.Service) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler: NewBaseHandler(),
		companies:   companies,
		defaults:    def,
	}
}

// Get handles GET /company: the profile of the default company.
func (h *CompanyHandler) Get(c *gin.Context) {
	global, err := h.defaults.Resolve(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	comp, err := h.companies.GetByCode(c.Request.Context(), global.DefaultCompany)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCompany(comp))
}
