package assistant

// AppendTurn returns history with a new turn at the end. The input slice is
// never modified in place.
func AppendTurn(history []Turn, role, content string) []Turn {
	out := make([]Turn, len(history), len(history)+1)
	copy(out, history)
	return append(out, Turn{Role: role, Content: content})
}

// Truncate keeps the most recent max entries of history in their original
// order. The dropped prefix is discarded silently.
func Truncate(history []Turn, max int) []Turn {
	if max <= 0 {
		return []Turn{}
	}
	if len(history) <= max {
		out := make([]Turn, len(history))
		copy(out, history)
		return out
	}
	out := make([]Turn, max)
	copy(out, history[len(history)-max:])
	return out
}
