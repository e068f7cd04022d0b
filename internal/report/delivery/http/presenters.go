package http

import (
	"fmt"
	"strings"

	"invoice-assistant/internal/report"
)

// --- Request DTOs ---

type downloadSelectedReq struct {
	EntityType  string `json:"-"` // populated from URI param
	SelectedIDs []any  `json:"selectedIds"`
}

func (r downloadSelectedReq) toInput() report.DownloadSelectedInput {
	ids := make([]string, 0, len(r.SelectedIDs))
	for _, id := range r.SelectedIDs {
		s := strings.TrimSpace(idString(id))
		if s != "" {
			ids = append(ids, s)
		}
	}
	return report.DownloadSelectedInput{
		EntityType: r.EntityType,
		IDs:        ids,
	}
}

// idString accepts both numeric ids and project names from the client.
func idString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
