package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCredCmd = &cobra.Command{
	Use:   "show-cred",
	Short: "Show the stored credentials (secrets masked)",
	RunE:  runShowCred,
}

func init() {
	RootCmd.AddCommand(showCredCmd)
}

func runShowCred(cmd *cobra.Command, args []string) error {
	rows := [][]string{
		{"username", viper.GetString(cfgKeyUsername)},
		{"password", hideSecret(viper.GetString(cfgKeyPassword), 2)},
		{"api-key", hideSecret(viper.GetString(cfgKeyAPIKey), 2)},
		{"language", viper.GetString(cfgKeyLanguage)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"key", "value"}, rows))
	return nil
}

// hideSecret masks the middle of a secret, keeping showChars characters
// visible at each end. Secrets too short to mask are returned unchanged.
func hideSecret(secret string, showChars int) string {
	if len(secret) <= showChars*2 {
		return secret
	}
	return secret[:showChars] +
		strings.Repeat("*", len(secret)-showChars*2) +
		secret[len(secret)-showChars:]
}
