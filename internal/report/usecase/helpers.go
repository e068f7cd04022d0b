package usecase

import (
	"fmt"
	"strconv"
)

// idKey matches an element id against the ::text keys of its subelements.
func idKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
