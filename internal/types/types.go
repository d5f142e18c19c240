package types

// ElementKind tags one parsed script element.
type ElementKind string

const (
	ElementSceneHeading ElementKind = "scene_heading"
	ElementCharacter    ElementKind = "character"
	ElementDialogue     ElementKind = "dialogue"
	ElementComment      ElementKind = "comment"
)

// Element is one parsed script element. Sequences are produced by an
// external screenplay parser and are never mutated here.
type Element struct {
	Kind ElementKind `json:"kind"`
	Text string      `json:"text"`
}

// SlotCount is the number of DCA slots on the console surface.
const SlotCount = 12

// Cue is a full console snapshot at one decision point. Channels and Labels
// are indexed 0..11 for DCAs 1..12; an empty string means the slot is clear.
// A cue is never modified after the generator emits it.
type Cue struct {
	Number   int               `json:"number"`
	Point    int               `json:"point"`
	Name     string            `json:"name"`
	Colour   int               `json:"colour"`
	Channels [SlotCount]string `json:"channels"`
	Labels   [SlotCount]string `json:"labels"`
}

// Profile maps a single character to a console input channel.
type Profile struct {
	ID      int64  `json:"id"`
	Channel int    `json:"channel"`
	Name    string `json:"name"`
	Label   string `json:"label,omitempty"`
}

// Ensemble is a named group carried on several channels at once.
// Channels is a comma-separated list of member channel numbers.
type Ensemble struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Channels string `json:"channels"`
}

// ConfigEntry is a key/value config row.
type ConfigEntry struct {
	Param string `json:"param"`
	Value string `json:"value"`
}

// SlotWarning reports a forced reuse of DCA 1 after the slot pool was
// exhausted. It signals a lookahead-window/pool-size mismatch, not a
// fatal condition: the run still produces its full cue list.
type SlotWarning struct {
	Character string `json:"character"`
	Page      int    `json:"page"`
	CueNumber int    `json:"cue_number"`
}
