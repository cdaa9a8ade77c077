package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain/quotation"
	"storefront/internal/infrastructure/http/v1/dto"
)

// QuotationHandler serves the quotation endpoints.
type QuotationHandler struct {
	*BaseHandler
	service *quotation.Service
}

// NewQuotationHandler creates a quotation handler.
func NewQuotationHandler(service *quotation.Service) *QuotationHandler {
	return &QuotationHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List handles GET /quotations.
func (h *QuotationHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	f, err := query.ToListFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromQuotationList(result.Items))
}

// Get handles GET /quotations/:name.
func (h *QuotationHandler) Get(c *gin.Context) {
	detail, err := h.service.GetDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromQuotationDetail(detail))
}

// Create handles POST /quotations.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.QuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		h.Error(c, err)
		return
	}

	q, err := h.service.Create(c.Request.Context(), h.GetUserID(c), payload)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.QuotationName{Name: q.Name})
}

// Update handles PUT /quotations/:name.
func (h *QuotationHandler) Update(c *gin.Context) {
	var req dto.QuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		h.Error(c, err)
		return
	}

	q, err := h.service.Update(c.Request.Context(), h.GetUserID(c), c.Param("name"), payload)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.QuotationName{Name: q.Name})
}

// Totals handles POST /quotations/totals: the preview the client shows
// before confirming. Runs the full assembler, persists nothing.
func (h *QuotationHandler) Totals(c *gin.Context) {
	var req dto.QuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		h.Error(c, err)
		return
	}

	q, err := h.service.Prepare(c.Request.Context(), h.GetUserID(c), payload)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromQuotationTotals(q))
}

// Attachments handles GET /quotations/:name/attachments.
func (h *QuotationHandler) Attachments(c *gin.Context) {
	attachments, err := h.service.Attachments(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAttachments(attachments))
}

// PDF handles GET /quotations/:name/pdf. Fails with a configuration error
// envelope unless a renderer is wired in.
func (h *QuotationHandler) PDF(c *gin.Context) {
	name := c.Param("name")

	pdf, err := h.service.RenderPDF(c.Request.Context(), name)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
