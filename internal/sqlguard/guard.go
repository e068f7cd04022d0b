// Package sqlguard is the lexical pre-check applied to model-generated SQL
// before it reaches the database. It is a coarse filter: statements are
// also executed inside a read-only transaction, which is what actually
// prevents writes.
package sqlguard

import (
	"errors"
	"strings"
)

var ErrUnsafeQuery = errors.New("unsafe sql query")

var denylist = map[string]struct{}{
	"DROP":     {},
	"DELETE":   {},
	"UPDATE":   {},
	"INSERT":   {},
	"ALTER":    {},
	"CREATE":   {},
	"GRANT":    {},
	"REVOKE":   {},
	"TRUNCATE": {},
	"RENAME":   {},
	"COMMENT":  {},
	"MODIFY":   {},
}

// IsSafe reports whether no whitespace-separated token of sql equals a
// denylisted keyword, compared case-insensitively. Tokens with attached
// punctuation ("DROP;") are not matched.
func IsSafe(sql string) bool {
	for _, tok := range strings.Fields(strings.ToUpper(sql)) {
		if _, denied := denylist[tok]; denied {
			return false
		}
	}
	return true
}

// Check returns ErrUnsafeQuery when IsSafe rejects sql.
func Check(sql string) error {
	if !IsSafe(sql) {
		return ErrUnsafeQuery
	}
	return nil
}

// Keywords returns the denylisted keywords, for diagnostics.
func Keywords() []string {
	out := make([]string, 0, len(denylist))
	for k := range denylist {
		out = append(out, k)
	}
	return out
}
