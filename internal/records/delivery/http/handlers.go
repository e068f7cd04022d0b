package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/records"
	"invoice-assistant/pkg/response"
)

// ListProjects godoc
// @Summary     List projects
// @Description Returns all projects, or the project with the given name.
// @Tags        Records
// @Produce     json
// @Param       name path string false "Project name"
// @Success     200 {array}  object
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/projects/{name} [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListProjects(ctx, records.ListProjectsInput{Name: c.Param("name")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// ListInvoices godoc
// @Summary     List invoices
// @Description Returns invoices, optionally of one project, filtered by folder type, date range and file name.
// @Tags        Records
// @Produce     json
// @Param       project                       path  string false "Project name"
// @Param       folderTypeFilters[adicionals] query string false "true to include Adicionals"
// @Param       folderTypeFilters[pressupost] query string false "true to include Pressupost contracte"
// @Param       startDate                     query string false "YYYY-MM-DD"
// @Param       endDate                       query string false "YYYY-MM-DD"
// @Param       FileNameKeyword               query string false "Case-insensitive file name match"
// @Success     200 {array}  object
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/invoices/{project} [GET]
func (h *handler) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListInvoicesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListInvoices(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInvoices: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// ListElements godoc
// @Summary     List elements
// @Description Returns elements with their invoice columns and a has_subelements flag.
// @Tags        Records
// @Produce     json
// @Param       project            path  string false "Project name"
// @Param       nameKeyword        query string false "Element name match"
// @Param       invoiceNameKeyword query string false "Invoice file name match"
// @Param       invoiceid          query int    false "Invoice id"
// @Param       minPrice           query number false "Minimum price per unit"
// @Param       maxPrice           query number false "Maximum price per unit"
// @Param       quantity           query number false "Exact quantity"
// @Success     200 {array}  object
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/elements/{project} [GET]
func (h *handler) ListElements(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListElementsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListElements(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListElements: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// ListSubelements godoc
// @Summary     List subelements
// @Description Returns the subelements of one element.
// @Tags        Records
// @Produce     json
// @Param       elementID path int true "Element id"
// @Success     200 {array}  object
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/subelements/{elementID} [GET]
func (h *handler) ListSubelements(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListSubelements(ctx, c.Param("elementID"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSubelements: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}
