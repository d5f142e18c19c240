package command

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/martinsound/stagemix/internal/db"
	"github.com/spf13/cobra"
)

// NewEnsemblesCmd creates the ensembles command and its add subcommand.
func NewEnsemblesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensembles",
		Short: "List ensemble channel groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			ensembles, err := db.GetEnsembles(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(ensembles)
			}

			out := cmd.OutOrStdout()
			if len(ensembles) == 0 {
				fmt.Fprintln(out, "No ensembles configured")
				return nil
			}
			for _, ensemble := range ensembles {
				fmt.Fprintf(out, "%s: %s\n", ensemble.Name, ensemble.Channels)
			}
			return nil
		},
	}

	cmd.AddCommand(newEnsemblesAddCmd())

	return cmd
}

func newEnsemblesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <channels>",
		Short: "Add an ensemble with comma-separated member channels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			channels := strings.TrimSpace(args[1])
			for _, part := range strings.Split(channels, ",") {
				if _, err := strconv.Atoi(strings.TrimSpace(part)); err != nil {
					return writeCommandError(cmd, fmt.Errorf("invalid channel list '%s'", args[1]))
				}
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			ensemble, err := db.CreateEnsemble(ctx.DB, args[0], channels)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(ensemble)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added ensemble %s on channels %s\n", ensemble.Name, ensemble.Channels)
			return nil
		},
	}
}
