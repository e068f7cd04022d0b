package http

import (
	"invoice-assistant/internal/assistant"
	"invoice-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"-"`
	Message   string `json:"message"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

func (h *handler) newChatResp(out assistant.ChatOutput) response.ChatResp {
	return response.ChatResp{
		Reply:     out.Reply,
		Format:    response.FormatMarkdown,
		ReportURL: out.ReportURL,
	}
}
