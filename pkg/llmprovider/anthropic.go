package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultMaxTokens = 1024

// AnthropicConfig configures the Anthropic Messages API.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// AnthropicAdapter implements Provider over anthropic-sdk-go.
type AnthropicAdapter struct {
	client anthropic.Client
	model  string
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(cfg AnthropicConfig) *AnthropicAdapter {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &AnthropicAdapter{client: anthropic.NewClient(opts...), model: cfg.Model}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := int64(anthropicDefaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages:  convertToAnthropicMessages(req.Messages),
	}
	if req.SystemInstruction != nil {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemInstruction.Text()}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	for _, t := range req.Tools {
		params.Tools = append(params.Tools, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        t.Name,
				Description: anthropic.String(t.Description),
				InputSchema: anthropic.ToolInputSchemaParam{Properties: t.Parameters["properties"]},
			},
		})
	}
	if req.ToolChoice != "" {
		params.ToolChoice = anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: req.ToolChoice},
		}
	}

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	if len(message.Content) == 0 {
		return nil, ErrEmptyResponse
	}

	content := Message{Role: "assistant"}
	for _, block := range message.Content {
		switch block.Type {
		case "tool_use":
			content.Parts = append(content.Parts, Part{FunctionCall: decodeFunctionCall(block.Name, string(block.Input))})
		case "text":
			if block.Text != "" {
				content.Parts = append(content.Parts, Part{Text: block.Text})
			}
		}
	}

	in, out := int(message.Usage.InputTokens), int(message.Usage.OutputTokens)
	return &Response{
		Content:      content,
		ProviderName: "anthropic",
		ModelName:    a.model,
		Usage:        &Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.model
}

// convertToAnthropicMessages drops system turns, which the Messages API only
// accepts through the System field, and merges consecutive same-role turns.
func convertToAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	lastRole := ""
	for _, m := range msgs {
		if m.Role == "system" {
			continue
		}
		role := "user"
		if m.Role == "assistant" {
			role = "assistant"
		}
		block := anthropic.NewTextBlock(m.Text())
		if role == lastRole && len(out) > 0 {
			out[len(out)-1].Content = append(out[len(out)-1].Content, block)
			continue
		}
		if role == "assistant" {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
		lastRole = role
	}
	return out
}

