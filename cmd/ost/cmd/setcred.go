package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var setCredCmd = &cobra.Command{
	Use:   "set-cred",
	Short: "Store OpenSubtitles credentials in the config file",
	Long: `Prompts for the OpenSubtitles API key, username and password and stores
them in the config file. Leaving a prompt blank keeps the existing value.`,
	RunE: runSetCred,
}

func init() {
	RootCmd.AddCommand(setCredCmd)
}

func runSetCred(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	prompts := []struct {
		label string
		key   string
	}{
		{"API key", cfgKeyAPIKey},
		{"username", cfgKeyUsername},
		{"password", cfgKeyPassword},
	}
	for _, p := range prompts {
		fmt.Fprintf(out, "Enter your %s (leave blank to keep existing): ", p.label)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading %s: %w", p.label, err)
		}
		if value := strings.TrimSpace(line); value != "" {
			viper.Set(p.key, value)
		}
	}
	if viper.GetString(cfgKeyLanguage) == "" {
		viper.Set(cfgKeyLanguage, "en")
	}

	path, err := saveConfig()
	if err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	fmt.Fprintf(out, "Credentials saved to %s\n", path)
	return nil
}
