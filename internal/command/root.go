package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "stagemix"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Stagemix - DCA mic cue generation for theatre",
		Long:          "Stagemix turns a parsed stage-play script into console cues that mute and unmute performer microphones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("db", "", "path to show database (overrides discovery)")
	cmd.PersistentFlags().Bool("json", false, "output in JSON format")

	cmd.AddCommand(
		NewInitCmd(),
		NewGenerateCmd(),
		NewCheckCmd(),
		NewCuesCmd(),
		NewCharactersCmd(),
		NewEnsemblesCmd(),
		NewConfigCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
