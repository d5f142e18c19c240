package command

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gobwas/glob"
	"github.com/martinsound/stagemix/internal/db"
	"github.com/spf13/cobra"
)

// NewCharactersCmd creates the characters command and its add subcommand.
func NewCharactersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List character channel profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match, _ := cmd.Flags().GetString("match")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			profiles, err := db.GetProfiles(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			ensembles, err := db.GetEnsembles(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if match != "" {
				matcher, err := glob.Compile(match)
				if err != nil {
					return writeCommandError(cmd, fmt.Errorf("invalid match pattern: %w", err))
				}
				matchedProfiles := profiles[:0:0]
				for _, profile := range profiles {
					if matcher.Match(profile.Name) {
						matchedProfiles = append(matchedProfiles, profile)
					}
				}
				profiles = matchedProfiles
				matchedEnsembles := ensembles[:0:0]
				for _, ensemble := range ensembles {
					if matcher.Match(ensemble.Name) {
						matchedEnsembles = append(matchedEnsembles, ensemble)
					}
				}
				ensembles = matchedEnsembles
			}

			if ctx.JSONMode {
				payload := map[string]any{"profiles": profiles, "ensembles": ensembles}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			out := cmd.OutOrStdout()
			if len(profiles) == 0 && len(ensembles) == 0 {
				fmt.Fprintln(out, "No characters configured")
				return nil
			}
			for _, profile := range profiles {
				fmt.Fprintf(out, "%3d  %s\n", profile.Channel, profile.Name)
			}
			for _, ensemble := range ensembles {
				fmt.Fprintf(out, "     %s (%s)\n", ensemble.Name, ensemble.Channels)
			}
			return nil
		},
	}

	cmd.Flags().String("match", "", "only show characters matching a glob")
	cmd.AddCommand(newCharactersAddCmd())

	return cmd
}

func newCharactersAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <channel>",
		Short: "Add a character channel profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")

			channel, err := strconv.Atoi(args[1])
			if err != nil {
				return writeCommandError(cmd, fmt.Errorf("invalid channel number '%s'", args[1]))
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			profile, err := db.CreateProfile(ctx.DB, args[0], channel, label)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(profile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s on channel %d\n", profile.Name, profile.Channel)
			return nil
		},
	}

	cmd.Flags().String("label", "", "console label override")

	return cmd
}
