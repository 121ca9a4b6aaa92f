package telegram

import "strings"

// SplitMessage splits a message into chunks of at most maxLen runes,
// trying to split at newlines when possible.
func SplitMessage(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			parts = append(parts, string(runes))
			break
		}

		splitAt := maxLen
		// Prefer a newline in the second half of the chunk.
		chunk := string(runes[:maxLen])
		if idx := strings.LastIndex(chunk, "\n"); idx >= 0 {
			if at := len([]rune(chunk[:idx])) + 1; at > maxLen/2 {
				splitAt = at
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}

	return parts
}
