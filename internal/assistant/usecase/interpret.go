package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/pkg/llmprovider"
)

// interpret asks the model to classify the latest user turn. history must
// already end with that turn.
func (uc *implUseCase) interpret(ctx context.Context, prompt string, history []assistant.Turn) (assistant.Intent, error) {
	sys := llmprovider.TextMessage(assistant.RoleSystem, prompt)
	req := &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          toMessages(history),
		Tools: []llmprovider.Tool{{
			Name:        interpretToolName,
			Description: interpretToolDescription,
			Parameters:  interpretToolParameters,
		}},
		ToolChoice:  interpretToolName,
		Temperature: llmprovider.Float(0),
		Purpose:     purposeInterpret,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return assistant.Intent{}, fmt.Errorf("%w: %v", assistant.ErrInterpretFailed, err)
	}

	fc := resp.Content.FunctionCall()
	if fc == nil {
		return assistant.Intent{}, fmt.Errorf("%w: model returned no function call", assistant.ErrInterpretFailed)
	}
	if fc.Name != interpretToolName {
		return assistant.Intent{}, fmt.Errorf("%w: unexpected function %q", assistant.ErrInterpretFailed, fc.Name)
	}

	intent, err := decodeIntent(fc)
	if err != nil {
		return assistant.Intent{}, fmt.Errorf("%w: %v", assistant.ErrInterpretFailed, err)
	}
	return intent.Normalize(), nil
}

func decodeIntent(fc *llmprovider.FunctionCall) (assistant.Intent, error) {
	raw := []byte(fc.RawArgs)
	if len(raw) == 0 {
		b, err := json.Marshal(fc.Args)
		if err != nil {
			return assistant.Intent{}, err
		}
		raw = b
	}

	var intent assistant.Intent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return assistant.Intent{}, fmt.Errorf("decode arguments: %w", err)
	}
	return intent, nil
}

func toMessages(turns []assistant.Turn) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(turns))
	for _, t := range turns {
		msgs = append(msgs, llmprovider.TextMessage(t.Role, t.Content))
	}
	return msgs
}
