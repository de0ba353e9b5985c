package prompt

import "strings"

// NotProvided is the bullet emitted for a field with no usable content.
const NotProvided = "- (informazione non fornita)"

const bulletPrefix = "- "

// Bulletize turns free text into a bullet list, one bullet per segment.
// Only newlines and semicolons separate segments; commas are kept as text.
func Bulletize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NotProvided
	}

	raw := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, bulletPrefix+s)
		}
	}
	if len(segments) == 0 {
		return NotProvided
	}
	return strings.Join(segments, "\n")
}
