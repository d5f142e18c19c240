package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/martinsound/stagemix/internal/types"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// renderCue formats one cue as a two-line listing entry: the cue header and
// a dimmed summary of every occupied slot.
func renderCue(c types.Cue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d  %s\n", c.Number, styleHeading.Render(c.Name))

	var slots []string
	for i := 0; i < types.SlotCount; i++ {
		if c.Labels[i] == "" && c.Channels[i] == "" {
			continue
		}
		entry := fmt.Sprintf("%d:%s", i+1, c.Labels[i])
		if c.Channels[i] != "" {
			entry += "(" + c.Channels[i] + ")"
		}
		slots = append(slots, entry)
	}
	if len(slots) == 0 {
		fmt.Fprintf(&b, "      %s", styleDim.Render("all slots clear"))
	} else {
		fmt.Fprintf(&b, "      %s", styleDim.Render(strings.Join(slots, "  ")))
	}
	return b.String()
}

func renderWarning(w types.SlotWarning) string {
	return styleWarn.Render(fmt.Sprintf(
		"Warning: DCA pool exhausted at cue %d (p%d); '%s' forced onto DCA 1",
		w.CueNumber, w.Page, w.Character))
}
