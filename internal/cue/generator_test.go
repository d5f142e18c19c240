package cue

import (
	"testing"

	"github.com/martinsound/stagemix/internal/types"
	"github.com/stretchr/testify/require"
)

func scene(heading string) types.Element {
	return types.Element{Kind: types.ElementSceneHeading, Text: heading}
}

func page(text string) types.Element {
	return types.Element{Kind: types.ElementComment, Text: text}
}

// activeLabels reports the non-empty slot labels of a cue, keyed by slot
// number (1-based).
func activeLabels(c types.Cue) map[int]string {
	labels := map[int]string{}
	for i := 0; i < types.SlotCount; i++ {
		if c.Labels[i] != "" {
			labels[i+1] = c.Labels[i]
		}
	}
	return labels
}

func TestGenerateTwoCharacterScene(t *testing.T) {
	var elements []types.Element
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, block("B", "line2")...)
	elements = append(elements, block("A", "line3")...)

	cues, warnings, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, cues, 3)

	require.Equal(t, `p0 +A: "line1"`, cues[0].Name)
	require.Equal(t, map[int]string{1: "A"}, activeLabels(cues[0]))

	// A stays active at B's block: its next line is inside the window.
	require.Equal(t, `p0 +B: "line2"`, cues[1].Name)
	require.Equal(t, map[int]string{1: "A", 2: "B"}, activeLabels(cues[1]))

	// At A's second block the script ends for B, so B is released.
	require.Equal(t, `p0 -B: "line3"`, cues[2].Name)
	require.Equal(t, map[int]string{1: "A"}, activeLabels(cues[2]))
}

func TestGenerateJointHeadingCollapsesToOneCue(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementCharacter, Text: "A & B"},
		{Kind: types.ElementDialogue, Text: "line1"},
	}

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 1)
	require.Equal(t, `p0 +A, +B: "line1"`, cues[0].Name)
	require.Equal(t, map[int]string{1: "A", 2: "B"}, activeLabels(cues[0]))
}

func TestGenerateNoCueWithoutStateChange(t *testing.T) {
	// A B A B: at A's second block both speakers are still live, so no cue
	// may be emitted there.
	var elements []types.Element
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, block("B", "line2")...)
	elements = append(elements, block("A", "line3")...)
	elements = append(elements, block("B", "line4")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 3)
	require.Equal(t, `p0 +A: "line1"`, cues[0].Name)
	require.Equal(t, `p0 +B: "line2"`, cues[1].Name)
	// The third cue comes from B's final block releasing A, not from A's
	// second block.
	require.Equal(t, `p0 -A: "line4"`, cues[2].Name)
}

func TestGenerateSceneBoundaryMutesAll(t *testing.T) {
	// A and B share the final block, so both are still live when the scene
	// ends and the boundary cue kills the pair.
	var elements []types.Element
	elements = append(elements, block("A & B", "line1")...)
	elements = append(elements, scene("INT. WHOVILLE"))
	elements = append(elements, block("C", "line2")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 3)

	boundary := cues[1]
	require.Equal(t, `p0 -A, B- Scene Change - line1`, boundary.Name)
	require.Empty(t, activeLabels(boundary))

	// Both slots returned to the pool: C takes slot 1.
	require.Equal(t, map[int]string{1: "C"}, activeLabels(cues[2]))
}

func TestGenerateSceneBoundaryTwoStepMute(t *testing.T) {
	// When A and B speak in separate blocks before the boundary, the
	// lookahead stops at the scene heading and releases A at B's block, so
	// the boundary cue only mutes the last speaker.
	var elements []types.Element
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, block("B", "line2")...)
	elements = append(elements, scene("INT. WHOVILLE"))
	elements = append(elements, block("C", "line3")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 4)

	require.Equal(t, `p0 +B -A: "line2"`, cues[1].Name)
	require.Equal(t, `p0 -B- Scene Change - line2`, cues[2].Name)
	require.Empty(t, activeLabels(cues[2]))
	require.Equal(t, map[int]string{1: "C"}, activeLabels(cues[3]))
}

func TestGenerateSceneBoundaryKillOverridesWindow(t *testing.T) {
	// A speaks again two blocks after the boundary, well inside the
	// window, but does not speak first in the new scene.
	var elements []types.Element
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, scene("INT. WHOVILLE"))
	elements = append(elements, block("B", "line2")...)
	elements = append(elements, block("A", "line3")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, `p0 -A- Scene Change - line1`, cues[1].Name)
	require.Empty(t, activeLabels(cues[1]))
}

func TestGenerateSceneBoundaryFirstSpeakerSurvives(t *testing.T) {
	var elements []types.Element
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, scene("INT. WHOVILLE"))
	elements = append(elements, block("A", "line2")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	// Unmute at the top, then nothing: A speaks first in the new scene and
	// its block causes no state change.
	require.Len(t, cues, 1)
}

func TestGenerateWindowRespected(t *testing.T) {
	build := func(fillers int) []types.Element {
		var elements []types.Element
		elements = append(elements, block("Y", "opening")...)
		for i := 0; i < fillers; i++ {
			elements = append(elements, block("X", "filler")...)
		}
		elements = append(elements, block("Y", "closing")...)
		return elements
	}

	// Y's next heading is the 7th examined: still inside the window.
	cues, _, err := Generate(build(7), nil, Options{Window: 7})
	require.NoError(t, err)
	require.Equal(t, `p0 +X: "filler"`, cues[1].Name)

	// One more filler pushes Y's return past the window; Y is released in
	// the same cue that unmutes X.
	cues, _, err = Generate(build(8), nil, Options{Window: 7})
	require.NoError(t, err)
	require.Equal(t, `p0 +X -Y: "filler"`, cues[1].Name)
}

func TestGenerateChannelMapping(t *testing.T) {
	channels := map[string]string{
		"Horton": "7",
		"Whos":   "11,12,13",
	}
	var elements []types.Element
	elements = append(elements, block("HORTON", "hello")...)
	elements = append(elements, block("WHOS (singing) & NARRATOR", "we are here")...)

	cues, _, err := Generate(elements, channels, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 2)

	require.Equal(t, "7", cues[0].Channels[0])
	require.Equal(t, "Horton", cues[0].Labels[0])

	// Ensemble channel list lands verbatim; the unmapped narrator gets a
	// label-only slot.
	require.Equal(t, "11,12,13", cues[1].Channels[1])
	require.Equal(t, "Whos", cues[1].Labels[1])
	require.Equal(t, "", cues[1].Channels[2])
	require.Equal(t, "Narrator", cues[1].Labels[2])
}

func TestGeneratePageTracking(t *testing.T) {
	var elements []types.Element
	elements = append(elements, page("Page 12"))
	elements = append(elements, block("A", "line1")...)
	elements = append(elements, page("not a page marker"))
	elements = append(elements, block("B", "line2")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, `p12 +A: "line1"`, cues[0].Name)
	// The script ends after B's block, so A is released in the same cue.
	require.Equal(t, `p12 +B -A: "line2"`, cues[1].Name)
}

func TestGenerateSlotPoolExhaustion(t *testing.T) {
	elements := []types.Element{
		{Kind: types.ElementCharacter, Text: "AA & BB & CC"},
		{Kind: types.ElementDialogue, Text: "crowd noise"},
	}

	cues, warnings, err := Generate(elements, nil, Options{Slots: 2})
	require.NoError(t, err)
	require.Len(t, cues, 1)
	require.Len(t, warnings, 1)
	require.Equal(t, "Cc", warnings[0].Character)
	require.Equal(t, 1, warnings[0].CueNumber)

	// The forced reuse overwrites slot 1's label; the run still completes.
	require.Equal(t, "Cc", cues[0].Labels[0])
	require.Equal(t, "Bb", cues[0].Labels[1])
}

func TestGenerateTruncationCollision(t *testing.T) {
	// Two distinct names sharing a 12-rune prefix collapse to one identity
	// and one slot. Documented lossy behavior of the label length limit.
	elements := []types.Element{
		{Kind: types.ElementCharacter, Text: "VERYLONGNAMEONE & VERYLONGNAMETWO"},
		{Kind: types.ElementDialogue, Text: "hello"},
	}

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Len(t, cues, 1)
	require.Equal(t, map[int]string{1: "Verylongname"}, activeLabels(cues[0]))
}

func TestGenerateSlotUniqueness(t *testing.T) {
	var elements []types.Element
	elements = append(elements, block("A & B", "one")...)
	elements = append(elements, block("C", "two")...)
	elements = append(elements, scene("INT. ELSEWHERE"))
	elements = append(elements, block("D & E", "three")...)
	elements = append(elements, block("A", "four")...)

	cues, warnings, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Empty(t, warnings)

	for _, c := range cues {
		seen := map[string]int{}
		for slot, label := range activeLabels(c) {
			if prev, dup := seen[label]; dup {
				t.Fatalf("cue %d: label %q bound to slots %d and %d", c.Number, label, prev, slot)
			}
			seen[label] = slot
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	var elements []types.Element
	elements = append(elements, page("Page 1"))
	elements = append(elements, block("A & B", "one")...)
	elements = append(elements, block("C", "two")...)
	elements = append(elements, block("D & E", "three")...)
	elements = append(elements, scene("INT. ELSEWHERE"))
	elements = append(elements, block("B", "four")...)

	first, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	second, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateSlotReuseLowestFirst(t *testing.T) {
	var elements []types.Element
	elements = append(elements, block("A", "one")...)
	elements = append(elements, block("B", "two")...)
	elements = append(elements, scene("INT. ELSEWHERE"))
	elements = append(elements, block("B", "three")...) // B speaks first, keeps slot 2
	elements = append(elements, block("C", "four")...)

	cues, _, err := Generate(elements, nil, Options{})
	require.NoError(t, err)

	final := cues[len(cues)-1]
	// A's released slot 1 is the lowest free slot, so C lands there. B's
	// script ends here, so the same cue releases slot 2.
	require.Equal(t, `p0 +C -B: "four"`, final.Name)
	require.Equal(t, map[int]string{1: "C"}, activeLabels(final))
}

func TestGenerateUnknownKindRejectsRun(t *testing.T) {
	elements := []types.Element{{Kind: "transition", Text: "CUT TO:"}}
	_, _, err := Generate(elements, nil, Options{})
	require.Error(t, err)
}

func TestGenerateEmptyScript(t *testing.T) {
	cues, warnings, err := Generate(nil, nil, Options{})
	require.NoError(t, err)
	require.Empty(t, cues)
	require.Empty(t, warnings)
}
