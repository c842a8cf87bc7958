package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	opensubtitles "github.com/dusking/opensubtitles-go"
	"github.com/dusking/opensubtitles-go/internal/history"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	downloadFileID   int
	downloadFile     string
	downloadLanguage string
	downloadOutput   string
	downloadForce    bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a subtitle by file ID or for a local movie file",
	Long: `Downloads a subtitle file.

With --file-id the given subtitle file is downloaded directly. With --file
the local movie is fingerprinted, the best hash match is downloaded and
saved next to the movie with an .srt suffix.

Already-downloaded file IDs are skipped to preserve the daily download
quota; use --force to download again.

Examples:
  ost download --file-id 928281
  ost download --file ./The.Matrix.1999.1080p.mkv --language en`,
	RunE: runDownload,
}

func init() {
	RootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntVar(&downloadFileID, "file-id", 0, "subtitle file ID to download")
	downloadCmd.Flags().StringVarP(&downloadFile, "file", "f", "", "local movie file to download subtitles for")
	downloadCmd.Flags().StringVarP(&downloadLanguage, "language", "l", "", "language code for subtitles (default from config)")
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "destination path for the subtitle file")
	downloadCmd.Flags().BoolVar(&downloadForce, "force", false, "download even if the file ID is in the download history")
}

func runDownload(cmd *cobra.Command, args []string) error {
	if (downloadFileID == 0) == (downloadFile == "") {
		return errors.New("exactly one of --file-id or --file must be provided")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	api, err := newAPIClient(ctx)
	if err != nil {
		return err
	}

	fileID := downloadFileID
	dest := downloadOutput
	if downloadFile != "" {
		results, err := searchSubtitles(ctx, api, "", downloadFile, configuredLanguage(downloadLanguage))
		if err != nil {
			return fmt.Errorf("subtitle search failed: %w", err)
		}
		if len(results.Data) == 0 {
			fmt.Fprintf(out, "No subtitles found for %s\n", downloadFile)
			return nil
		}
		sub := results.Data[0]
		if len(sub.Attributes.Files) == 0 {
			return fmt.Errorf("subtitle %s has no downloadable files", sub.ID)
		}
		fileID = sub.Attributes.Files[0].FileID
		if dest == "" {
			dest = replaceExt(downloadFile, ".srt")
		}
		fmt.Fprintf(out, "Found %d subtitles, downloading the first into %s\n", len(results.Data), dest)
	} else if dest == "" {
		dest = fmt.Sprintf("%d.srt", fileID)
	}

	store, err := openHistory()
	if err != nil {
		logrus.Warnf("download history unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	if store != nil && !downloadForce {
		entry, err := store.Lookup(fileID)
		if err != nil {
			logrus.Warnf("download history lookup failed: %v", err)
		} else if entry != nil {
			fmt.Fprintf(out, "File %d was already downloaded to %s on %s; use --force to download again\n",
				fileID, entry.Path, entry.SavedAt.Format("2006-01-02"))
			return nil
		}
	}

	resp, err := api.DownloadToFile(ctx, opensubtitles.DownloadRequest{FileID: fileID}, dest)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	if store != nil {
		if err := store.Record(history.Entry{FileID: fileID, Path: dest, SavedAt: time.Now()}); err != nil {
			logrus.Warnf("failed to record download history: %v", err)
		}
	}

	fmt.Fprintf(out, "Subtitles have been downloaded to: %s (%d downloads remaining)\n", dest, resp.Remaining)
	return nil
}

func openHistory() (*history.Store, error) {
	path := historyPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return history.Open(path)
}

// replaceExt swaps the extension of path for ext (which includes the dot).
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
