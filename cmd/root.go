package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:          "sscreen [[host:]name]",
	Short:        "Create, resume, list and kill GNU screen sessions",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagBool(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		var host, name string
		if len(args) == 1 {
			host, name = parseHostName(args[0])
		}

		// Actions are mutually exclusive; the first matching flag wins.
		switch {
		case flagBool(cmd, "detach"):
			return detachSession()
		case flagString(cmd, "chdir") != "":
			return updateDirectory(flagString(cmd, "chdir"))
		case flagBool(cmd, "directory"):
			return updateDirectory("")
		case flagBool(cmd, "list"):
			return listSessions(host)
		case flagBool(cmd, "kill"):
			return killSession(host, name)
		case flagBool(cmd, "kill-all"):
			return killAllSessions(host)
		default:
			return connectSession(host, name)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("list", "l", false, "list all open sessions")
	rootCmd.Flags().BoolP("kill", "k", false, "kill a session")
	rootCmd.Flags().BoolP("kill-all", "K", false, "kill all sessions")
	rootCmd.Flags().BoolP("directory", "d", false, "set current directory as the session default")
	rootCmd.Flags().String("chdir", "", "set the session default directory to the given path")
	rootCmd.Flags().BoolP("detach", "x", false, "detach from the current session")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
}
