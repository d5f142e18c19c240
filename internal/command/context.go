package command

import (
	"database/sql"

	"github.com/martinsound/stagemix/internal/core"
	"github.com/martinsound/stagemix/internal/db"
	"github.com/spf13/cobra"
)

// CommandContext provides shared command resources.
type CommandContext struct {
	DB       *sql.DB
	Show     core.Show
	JSONMode bool
}

// GetContext resolves the show database for a command, honoring the --db
// override before falling back to directory discovery.
func GetContext(cmd *cobra.Command) (*CommandContext, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	jsonMode, _ := cmd.Flags().GetBool("json")

	var show core.Show
	var err error
	if dbPath != "" {
		show, err = core.ShowFromDBPath(dbPath)
	} else {
		show, err = core.DiscoverShow("")
	}
	if err != nil {
		return nil, err
	}

	conn, err := db.OpenDatabase(show)
	if err != nil {
		return nil, err
	}
	exists, err := db.SchemaExists(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if !exists {
		if err := db.InitSchema(conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return &CommandContext{
		DB:       conn,
		Show:     show,
		JSONMode: jsonMode,
	}, nil
}
