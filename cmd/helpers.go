package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpanesar/sscreen/internal/config"
	"github.com/jpanesar/sscreen/internal/prompt"
	"github.com/jpanesar/sscreen/internal/screen"
)

// parseHostName splits "host:name" into (host, name).
// If no colon, returns ("", name).
func parseHostName(s string) (host, name string) {
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return "", s
}

// resolveDispatcher returns a dispatcher for the given host nickname.
// Empty or unconfigured hosts fall back to the local screen binary.
func resolveDispatcher(host string) screen.Dispatcher {
	cfg := loadConfig()
	if host == "" {
		return &screen.LocalDispatcher{Bin: cfg.ScreenBin}
	}

	h, ok := cfg.Hosts[host]
	if !ok {
		return &screen.LocalDispatcher{Bin: cfg.ScreenBin}
	}

	return &screen.SSHDispatcher{
		Nickname: host,
		Host:     h.Host,
		User:     h.User,
		SSHKey:   h.SSHKey,
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil || cfg == nil {
		return &config.Config{DefaultSession: screen.DefaultSessionName}
	}
	return cfg
}

func newPrompter() *prompt.Prompter {
	return prompt.New(prompt.NewStdConsole())
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
