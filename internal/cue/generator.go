// Package cue turns a parsed script into an ordered list of console cues
// that mute and unmute performer microphones. The generator is a single-pass
// state machine over the element sequence: it treats the console's DCA slots
// as a scarce pool, binds a slot to each character just before they speak,
// and releases it once lookahead shows they stay silent for a while or the
// scene ends. Every emitted cue carries the complete slot snapshot, so any
// single cue fully describes the console state at that point in the show.
package cue

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/martinsound/stagemix/internal/script"
	"github.com/martinsound/stagemix/internal/types"
)

// DefaultWindow is the number of upcoming dialogue blocks examined before an
// idle character is muted.
const DefaultWindow = 7

// previewLen caps the dialogue snippet carried in a cue name, in runes.
const previewLen = 30

var pageMarker = regexp.MustCompile(`^Page (\d+)$`)

// Options configure one generation run.
type Options struct {
	// Window is the dialogue-block lookahead; characters not speaking again
	// within it are muted. Defaults to DefaultWindow.
	Window int

	// Slots is the size of the DCA pool, 1..types.SlotCount. Defaults to
	// types.SlotCount.
	Slots int
}

func (o Options) withDefaults() Options {
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.Slots <= 0 || o.Slots > types.SlotCount {
		o.Slots = types.SlotCount
	}
	return o
}

// generator holds the mutable walk state for a single run. A fresh instance
// is built per Generate call; nothing here is shared or reused.
type generator struct {
	opts     Options
	channels map[string]string

	active       map[string]int // identity -> bound slot (1-based)
	channelState [types.SlotCount]string
	labelState   [types.SlotCount]string
	page         int
	next         int
	cues         []types.Cue
	warnings     []types.SlotWarning
}

// Generate walks the element sequence once and emits one cue per decision
// point: a character heading that changes the active set, or a scene
// boundary with characters left to kill. channels maps character identities
// to their channel representation (a single number, or a comma list for
// ensembles); characters absent from it still get a labelled slot with no
// channel value. The returned warnings report forced slot reuse after pool
// exhaustion; the cue list is still complete when warnings are present.
func Generate(elements []types.Element, channels map[string]string, opts Options) ([]types.Cue, []types.SlotWarning, error) {
	g := &generator{
		opts:     opts.withDefaults(),
		channels: channels,
		active:   make(map[string]int),
		next:     1,
	}

	for i, element := range elements {
		switch element.Kind {
		case types.ElementComment:
			g.notePage(element.Text)
		case types.ElementSceneHeading:
			g.sceneBoundary(elements[:i], elements[i+1:])
		case types.ElementCharacter:
			g.dialogueBlock(element.Text, elements[i+1:])
		case types.ElementDialogue:
			// covered by the heading that opened the block
		default:
			return nil, nil, fmt.Errorf("element %d: unknown kind %q", i, element.Kind)
		}
	}

	return g.cues, g.warnings, nil
}

func (g *generator) notePage(text string) {
	if m := pageMarker.FindStringSubmatch(text); m != nil {
		if page, err := strconv.Atoi(m[1]); err == nil {
			g.page = page
		}
	}
}

// sceneBoundary is decision point A: a scene heading unconditionally kills
// every active character except those who speak first in the new scene.
func (g *generator) sceneBoundary(before, after []types.Element) {
	firstSpeakers := map[string]struct{}{}
	for _, element := range after {
		if element.Kind == types.ElementCharacter {
			for _, name := range script.SplitCharacters(element.Text) {
				firstSpeakers[script.Identity(name)] = struct{}{}
			}
			break
		}
		if element.Kind == types.ElementSceneHeading {
			break
		}
	}

	var toMute []string
	for _, id := range g.activeSorted() {
		if _, speaksFirst := firstSpeakers[id]; !speaksFirst {
			toMute = append(toMute, id)
		}
	}
	if len(toMute) == 0 {
		return
	}

	name := fmt.Sprintf("p%d -%s- Scene Change - %s",
		g.page, strings.Join(toMute, ", "), script.LastLinePreview(before, previewLen))
	c := g.snapshot(name)
	for _, id := range toMute {
		g.mute(&c, id)
	}
	g.emit(c)
}

// dialogueBlock is decision point B: unmute everyone named by the heading,
// then mute any active character whose next line is beyond the lookahead
// window. Both halves collapse into a single cue.
func (g *generator) dialogueBlock(heading string, after []types.Element) {
	names := script.SplitCharacters(heading)
	speaking := make(map[string]struct{}, len(names))

	var toUnmute []string
	for _, name := range names {
		id := script.Identity(name)
		speaking[id] = struct{}{}
		if _, isActive := g.active[id]; isActive {
			continue
		}
		slot, ok := g.lowestFreeSlot()
		if !ok {
			// Pool exhausted. Force DCA 1 rather than dropping the line;
			// the warning tells the operator to widen the pool or shrink
			// the lookahead window.
			slot = 1
			g.warnings = append(g.warnings, types.SlotWarning{
				Character: id,
				Page:      g.page,
				CueNumber: g.next,
			})
		}
		g.active[id] = slot
		toUnmute = append(toUnmute, id)
	}

	var toMute []string
	for _, id := range g.activeSorted() {
		if _, isSpeaking := speaking[id]; isSpeaking {
			continue
		}
		if !SpeaksWithin(after, id, g.opts.Window, false) {
			toMute = append(toMute, id)
		}
	}

	if len(toUnmute) == 0 && len(toMute) == 0 {
		return
	}

	c := g.snapshot(g.blockCueName(toUnmute, toMute, after))
	for _, id := range toUnmute {
		g.unmute(&c, id)
	}
	for _, id := range toMute {
		g.mute(&c, id)
	}
	g.emit(c)
}

func (g *generator) blockCueName(toUnmute, toMute []string, after []types.Element) string {
	var groups []string
	if len(toUnmute) > 0 {
		signed := make([]string, len(toUnmute))
		for i, id := range toUnmute {
			signed[i] = "+" + id
		}
		groups = append(groups, strings.Join(signed, ", "))
	}
	if len(toMute) > 0 {
		signed := make([]string, len(toMute))
		for i, id := range toMute {
			signed[i] = "-" + id
		}
		groups = append(groups, strings.Join(signed, ", "))
	}
	return fmt.Sprintf("p%d %s: \"%s\"",
		g.page, strings.Join(groups, " "), script.FirstLinePreview(after, previewLen))
}

// snapshot starts a cue from the running slot state. Cue arrays are value
// types, so the copy is free of aliasing with later state changes.
func (g *generator) snapshot(name string) types.Cue {
	return types.Cue{
		Number:   g.next,
		Point:    0,
		Name:     name,
		Channels: g.channelState,
		Labels:   g.labelState,
	}
}

func (g *generator) unmute(c *types.Cue, id string) {
	slot := g.active[id]
	if channel := g.channels[id]; channel != "" {
		c.Channels[slot-1] = channel
		g.channelState[slot-1] = channel
	}
	c.Labels[slot-1] = id
	g.labelState[slot-1] = id
}

func (g *generator) mute(c *types.Cue, id string) {
	slot := g.active[id]
	if channel := g.channels[id]; channel != "" {
		c.Channels[slot-1] = ""
		g.channelState[slot-1] = ""
	}
	c.Labels[slot-1] = ""
	g.labelState[slot-1] = ""
	delete(g.active, id)
}

func (g *generator) emit(c types.Cue) {
	g.cues = append(g.cues, c)
	g.next++
}

// activeSorted returns the active identities in lexicographic order so cue
// names and slot releases are stable across runs.
func (g *generator) activeSorted() []string {
	ids := make([]string, 0, len(g.active))
	for id := range g.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// lowestFreeSlot picks the numerically lowest unbound slot. The greedy
// minimum is a fixed tie-break: downstream cue stability depends on the
// same script always producing the same assignments.
func (g *generator) lowestFreeSlot() (int, bool) {
	used := make([]bool, g.opts.Slots+1)
	for _, slot := range g.active {
		if slot <= g.opts.Slots {
			used[slot] = true
		}
	}
	for slot := 1; slot <= g.opts.Slots; slot++ {
		if !used[slot] {
			return slot, true
		}
	}
	return 0, false
}
