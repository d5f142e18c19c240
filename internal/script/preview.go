package script

import "github.com/martinsound/stagemix/internal/types"

// FirstLinePreview returns the text of the first dialogue element in the
// slice, truncated to length runes with a trailing ellipsis when longer.
// Returns "" when the slice holds no dialogue.
func FirstLinePreview(elements []types.Element, length int) string {
	for _, element := range elements {
		if element.Kind == types.ElementDialogue {
			runes := []rune(element.Text)
			if len(runes) > length {
				return string(runes[:length]) + "..."
			}
			return element.Text
		}
	}
	return ""
}

// LastLinePreview returns the text of the last dialogue element in the
// slice, truncated to its final length runes with a leading ellipsis when
// longer. Returns "" when the slice holds no dialogue.
func LastLinePreview(elements []types.Element, length int) string {
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].Kind != types.ElementDialogue {
			continue
		}
		runes := []rune(elements[i].Text)
		if len(runes) > length {
			return "..." + string(runes[len(runes)-length:])
		}
		return elements[i].Text
	}
	return ""
}
