package command

import (
	"encoding/json"
	"fmt"

	"github.com/martinsound/stagemix/internal/db"
	"github.com/martinsound/stagemix/internal/script"
	"github.com/spf13/cobra"
)

type checkResult struct {
	Characters int      `json:"characters"`
	Unmapped   []string `json:"unmapped,omitempty"`
}

// NewCheckCmd creates the check command. A character without a channel
// mapping still gets a labelled slot during generation, so this is advisory:
// it surfaces the gaps before a run rather than failing one.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <script.jsonl>",
		Short: "List script characters missing a channel mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			characters := script.Characters(elements)
			var unmapped []string
			for _, name := range characters {
				if _, ok := channels[script.Identity(name)]; !ok {
					unmapped = append(unmapped, name)
				}
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(checkResult{
					Characters: len(characters),
					Unmapped:   unmapped,
				})
			}

			out := cmd.OutOrStdout()
			if len(unmapped) == 0 {
				fmt.Fprintf(out, "All %d characters have channel mappings\n", len(characters))
				return nil
			}
			fmt.Fprintf(out, "%d of %d characters have no channel mapping:\n", len(unmapped), len(characters))
			for _, name := range unmapped {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	return cmd
}
