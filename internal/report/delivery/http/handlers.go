package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/report"
	"invoice-assistant/pkg/response"
)

// Download godoc
// @Summary     Download a report
// @Description Streams a previously generated report as an attachment.
// @Tags        Reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       filename path string true "Report file name"
// @Success     200
// @Failure     404 {object} response.ErrorResp "File not found"
// @Router      /api/download/{filename} [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Open(ctx, c.Param("filename"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer out.Body.Close()

	h.stream(c, out)
}

// DownloadSelected godoc
// @Summary     Export selected records
// @Description Builds a spreadsheet of the selected projects, invoices or elements.
// @Tags        Reports
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       entityType path string true "projects, invoices or elements"
// @Param       body body downloadSelectedReq true "Selected ids"
// @Success     200
// @Failure     400 {object} response.ErrorResp "No items selected / Invalid entity type"
// @Failure     404 {object} response.ErrorResp "No data found for selected items"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/download_selected/{entityType} [POST]
func (h *handler) DownloadSelected(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDownloadSelectedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	artifact, err := h.uc.DownloadSelected(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DownloadSelected: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Open(ctx, artifact.Filename)
	if err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer out.Body.Close()

	h.stream(c, out)
}

func (h *handler) stream(c *gin.Context, out report.OpenOutput) {
	c.DataFromReader(http.StatusOK, out.Size, out.ContentType, out.Body, map[string]string{
		"Content-Disposition": attachment(out.Filename),
	})
}
