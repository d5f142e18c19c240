package cue

import (
	"github.com/martinsound/stagemix/internal/script"
	"github.com/martinsound/stagemix/internal/types"
)

// SpeaksWithin reports whether character speaks again within the next window
// dialogue blocks of elements. A scene heading kills liveness immediately,
// regardless of how much of the window remains. With skipFirst set, the
// first character heading encountered is consumed without being tested or
// counted, so a caller can exclude the block it is currently standing on.
func SpeaksWithin(elements []types.Element, character string, window int, skipFirst bool) bool {
	dialogues := 0
	firstSkipped := !skipFirst
	for _, element := range elements {
		if dialogues >= window {
			return false
		}
		switch element.Kind {
		case types.ElementSceneHeading:
			return false
		case types.ElementCharacter:
			if !firstSkipped {
				firstSkipped = true
				continue
			}
			for _, name := range script.SplitCharacters(element.Text) {
				if script.Identity(name) == character {
					return true
				}
			}
			dialogues++
		}
	}
	return false
}
