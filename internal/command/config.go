package command

import (
	"encoding/json"
	"fmt"

	"github.com/martinsound/stagemix/internal/db"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [param] [value]",
		Short: "Get or set show configuration",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			if len(args) == 0 {
				entries, err := db.GetAllConfig(ctx.DB)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if ctx.JSONMode {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No configuration set")
					return nil
				}
				for _, entry := range entries {
					fmt.Fprintf(out, "  %s: %s\n", entry.Param, entry.Value)
				}
				return nil
			}

			param := args[0]
			if len(args) == 1 {
				value, err := db.GetConfig(ctx.DB, param)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if value == "" {
					return writeCommandError(cmd, fmt.Errorf("config param '%s' not set", param))
				}
				if ctx.JSONMode {
					payload := map[string]string{param: value}
					return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", param, value)
				return nil
			}

			if err := db.SetConfig(ctx.DB, param, args[1]); err != nil {
				return writeCommandError(cmd, err)
			}
			if ctx.JSONMode {
				payload := map[string]string{param: args[1]}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", param, args[1])
			return nil
		},
	}

	return cmd
}
