package command

import (
	"encoding/json"
	"fmt"

	"github.com/martinsound/stagemix/internal/core"
	"github.com/martinsound/stagemix/internal/db"
	"github.com/spf13/cobra"
)

type initResult struct {
	Initialized    bool   `json:"initialized"`
	AlreadyExisted bool   `json:"already_existed"`
	Path           string `json:"path"`
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a show database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			show, existed, err := core.InitShow(root)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			conn, err := db.OpenDatabase(show)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer conn.Close()
			if err := db.InitSchema(conn); err != nil {
				return writeCommandError(cmd, err)
			}

			jsonMode, _ := cmd.Flags().GetBool("json")
			if jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(initResult{
					Initialized:    true,
					AlreadyExisted: existed,
					Path:           show.DBPath,
				})
			}
			if existed {
				fmt.Fprintf(cmd.OutOrStdout(), "Show already initialized: %s\n", show.DBPath)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized show database: %s\n", show.DBPath)
			}
			return nil
		},
	}

	return cmd
}
