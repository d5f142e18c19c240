package command

import (
	"encoding/json"
	"fmt"

	"github.com/gobwas/glob"
	"github.com/martinsound/stagemix/internal/db"
	"github.com/martinsound/stagemix/internal/types"
	"github.com/spf13/cobra"
)

// NewCuesCmd creates the cues command.
func NewCuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cues",
		Short: "List stored cues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match, _ := cmd.Flags().GetString("match")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			cues, err := db.GetCues(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if match != "" {
				matcher, err := glob.Compile(match)
				if err != nil {
					return writeCommandError(cmd, fmt.Errorf("invalid match pattern: %w", err))
				}
				cues = filterCues(cues, matcher)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cues)
			}

			out := cmd.OutOrStdout()
			if len(cues) == 0 {
				fmt.Fprintln(out, "No cues stored")
				return nil
			}
			for _, c := range cues {
				fmt.Fprintln(out, renderCue(c))
			}
			return nil
		},
	}

	cmd.Flags().String("match", "", "only show cues whose name or slot labels match a glob")

	return cmd
}

func filterCues(cues []types.Cue, matcher glob.Glob) []types.Cue {
	var matched []types.Cue
	for _, c := range cues {
		if cueMatches(c, matcher) {
			matched = append(matched, c)
		}
	}
	return matched
}

func cueMatches(c types.Cue, matcher glob.Glob) bool {
	if matcher.Match(c.Name) {
		return true
	}
	for _, label := range c.Labels {
		if label != "" && matcher.Match(label) {
			return true
		}
	}
	return false
}
