package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var userInfoCmd = &cobra.Command{
	Use:   "user-info",
	Short: "Show account level and download quota",
	RunE:  runUserInfo,
}

func init() {
	RootCmd.AddCommand(userInfoCmd)
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	api, err := newAPIClient(ctx)
	if err != nil {
		return err
	}

	info, err := api.GetUserInfo(ctx)
	if err != nil {
		return fmt.Errorf("fetching user info failed: %w", err)
	}

	user := info.Data
	rows := [][]string{
		{"user-id", strconv.Itoa(user.UserID)},
		{"level", user.Level},
		{"vip", strconv.FormatBool(user.VIP)},
		{"allowed-downloads", strconv.Itoa(user.AllowedDownloads)},
		{"downloads-count", strconv.Itoa(user.DownloadsCount)},
		{"remaining-downloads", strconv.Itoa(user.RemainingDownloads)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"key", "value"}, rows))
	return nil
}
