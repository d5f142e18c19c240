package command

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/martinsound/stagemix/internal/cue"
	"github.com/martinsound/stagemix/internal/db"
	"github.com/martinsound/stagemix/internal/script"
	"github.com/martinsound/stagemix/internal/types"
	"github.com/spf13/cobra"
)

type generateResult struct {
	Cues     []types.Cue         `json:"cues"`
	Warnings []types.SlotWarning `json:"warnings,omitempty"`
	Written  bool                `json:"written"`
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <script.jsonl>",
		Short: "Generate DCA mute cues from a parsed script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			replace, _ := cmd.Flags().GetBool("replace")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			elements, err := script.ReadElements(args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			channels, err := db.GetCharacterChannels(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			opts := cue.Options{
				Window: resolveIntOption(cmd, ctx.DB, "window", "lookahead"),
				Slots:  resolveIntOption(cmd, ctx.DB, "slots", "dcas"),
			}

			cues, warnings, err := cue.Generate(elements, channels, opts)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), renderWarning(w))
			}

			written := false
			if write {
				if replace {
					if err := db.DeleteCues(ctx.DB); err != nil {
						return writeCommandError(cmd, err)
					}
				}
				for _, c := range cues {
					if _, err := db.AddCue(ctx.DB, c); err != nil {
						return writeCommandError(cmd, fmt.Errorf("persist cue %d: %w", c.Number, err))
					}
				}
				written = true
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(generateResult{
					Cues:     cues,
					Warnings: warnings,
					Written:  written,
				})
			}

			out := cmd.OutOrStdout()
			for _, c := range cues {
				fmt.Fprintln(out, renderCue(c))
			}
			fmt.Fprintf(out, "Generated %d cues", len(cues))
			if written {
				fmt.Fprint(out, " (written to show database)")
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().Bool("write", false, "persist generated cues to the show database")
	cmd.Flags().Bool("replace", false, "with --write, clear stored cues first")
	cmd.Flags().Int("window", 0, "lookahead window in dialogue blocks (overrides config)")
	cmd.Flags().Int("slots", 0, "DCA pool size, 1-12 (overrides config)")

	return cmd
}

// resolveIntOption picks a numeric option: explicit flag first, then the
// config table, then zero so the generator applies its own default.
func resolveIntOption(cmd *cobra.Command, conn *sql.DB, flagName, configParam string) int {
	if cmd.Flags().Changed(flagName) {
		value, _ := cmd.Flags().GetInt(flagName)
		return value
	}
	raw, err := db.GetConfig(conn, configParam)
	if err != nil || raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
