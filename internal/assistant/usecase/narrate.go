package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/pkg/llmprovider"
)

// narrate sends the data summary after the conversation and returns the
// model's free-form answer. The window counts the system prompt as a turn.
func (uc *implUseCase) narrate(ctx context.Context, prompt string, history []assistant.Turn, rs assistant.ResultSet) (string, error) {
	full := make([]assistant.Turn, 0, len(history)+2)
	full = append(full, assistant.Turn{Role: assistant.RoleSystem, Content: prompt})
	full = append(full, history...)
	full = append(full, assistant.Turn{Role: assistant.RoleUser, Content: summarize(rs)})
	window := assistant.Truncate(full, uc.maxHistory)

	req := &llmprovider.Request{Purpose: purposeNarrate}
	if len(window) > 0 && window[0].Role == assistant.RoleSystem {
		sys := llmprovider.TextMessage(assistant.RoleSystem, window[0].Content)
		req.SystemInstruction = &sys
		window = window[1:]
	}
	req.Messages = toMessages(window)

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", assistant.ErrNarrateFailed, err)
	}

	reply := strings.TrimSpace(resp.Content.Text())
	if reply == "" {
		return "", assistant.ErrEmptyNarration
	}
	return reply, nil
}

// summarize turns a result set into the synthetic user turn for narration.
func summarize(rs assistant.ResultSet) string {
	return dataSummary + strings.Join(formatRows(rs), "\n")
}

// formatRows renders every row as "Col: val" pairs.
func formatRows(rs assistant.ResultSet) []string {
	if len(rs.Rows) == 0 {
		return []string{noResults}
	}

	labels := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		labels[i] = humanize(c)
	}

	lines := make([]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		pairs := make([]string, 0, len(row))
		for i, v := range row {
			label := ""
			if i < len(labels) {
				label = labels[i]
			}
			pairs = append(pairs, label+": "+formatValue(v))
		}
		lines = append(lines, strings.Join(pairs, ", "))
	}
	return lines
}

// humanize replaces underscores with spaces, upper-cases the first letter
// and lower-cases the rest.
func humanize(col string) string {
	s := strings.ReplaceAll(col, "_", " ")
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}
