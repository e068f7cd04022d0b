package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the data assistant
// @Description Interprets a natural-language message and answers with data, a report link or guidance.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} response.ChatResp
// @Failure     400 {object} response.ChatResp "Validation error"
// @Failure     500 {object} response.ChatResp "Processing error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.replyError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

func (h *handler) replyError(c *gin.Context, err error) {
	code, reply := h.mapError(err)
	c.JSON(code, response.ChatResp{Reply: reply, Format: response.FormatMarkdown})
}
