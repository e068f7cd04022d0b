package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIConfig configures an OpenAI compatible chat completions endpoint.
// DeepSeek and Qwen (DashScope compatible mode) are served by the same
// adapter with their own BaseURL.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIAdapter implements Provider over openai-go.
type OpenAIAdapter struct {
	client openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates a new OpenAI compatible adapter.
func NewOpenAIAdapter(cfg OpenAIConfig) *OpenAIAdapter {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	name := cfg.Name
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{client: openai.NewClient(opts...), name: name, model: cfg.Model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: convertToOpenAIMessages(req),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if len(req.Tools) > 0 {
		params.Tools = convertToOpenAITools(req.Tools)
	}
	if req.ToolChoice != "" {
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfChatCompletionNamedToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{Name: req.ToolChoice},
			},
		}
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", a.name, err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	msg := completion.Choices[0].Message
	content := Message{Role: "assistant"}
	if msg.Content != "" {
		content.Parts = append(content.Parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		content.Parts = append(content.Parts, Part{FunctionCall: decodeFunctionCall(tc.Function.Name, tc.Function.Arguments)})
	}

	return &Response{
		Content:      content,
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		out = append(out, openai.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Text()))
		case "system":
			out = append(out, openai.SystemMessage(m.Text()))
		default:
			out = append(out, openai.UserMessage(m.Text()))
		}
	}
	return out
}

func convertToOpenAITools(tools []Tool) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  openai.FunctionParameters(t.Parameters),
			},
		})
	}
	return out
}

// decodeFunctionCall keeps the raw argument string and a best-effort decoded map.
func decodeFunctionCall(name, raw string) *FunctionCall {
	fc := &FunctionCall{Name: name, RawArgs: raw}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		fc.Args = args
	}
	return fc
}
