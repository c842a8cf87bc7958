package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	opensubtitles "github.com/dusking/opensubtitles-go"
	"github.com/dusking/opensubtitles-go/pkg/fileops"
	ptn "github.com/razsteinmetz/go-ptn"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	searchQuery    string
	searchLanguage string
	searchFile     string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for subtitles by text query or local movie file",
	Long: `Searches OpenSubtitles.com for subtitles.

With --file the movie file is fingerprinted and looked up by content hash;
when the hash yields nothing the title parsed from the filename is retried
as a text query.

Examples:
  ost search --query "The Matrix" --language en
  ost search --file ./The.Matrix.1999.1080p.mkv`,
	RunE: runSearch,
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "movie title or free text search")
	searchCmd.Flags().StringVarP(&searchLanguage, "language", "l", "", "language code for subtitles (default from config)")
	searchCmd.Flags().StringVarP(&searchFile, "file", "f", "", "local movie file to search subtitles for")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchQuery == "" && searchFile == "" {
		return errors.New("at least one of --query or --file must be provided")
	}

	ctx := cmd.Context()
	api, err := newAPIClient(ctx)
	if err != nil {
		return err
	}

	results, err := searchSubtitles(ctx, api, searchQuery, searchFile, configuredLanguage(searchLanguage))
	if err != nil {
		return fmt.Errorf("subtitle search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results.Data) == 0 {
		fmt.Fprintln(out, "No subtitles found matching the criteria.")
		return nil
	}

	rows := make([][]string, 0, len(results.Data))
	for _, sub := range results.Data {
		rows = append(rows, subtitleRow(sub))
	}
	fmt.Fprintln(out, renderTable([]string{"title", "year", "language", "file-id", "file-name"}, rows))
	if results.TotalPages > 1 {
		fmt.Fprintf(out, "More results available (page %d of %d)\n", results.Page, results.TotalPages)
	}
	return nil
}

// searchSubtitles prefers hash-based lookup of a local file and falls back
// to a text query parsed from its name.
func searchSubtitles(ctx context.Context, api subtitleAPI, query, file, lang string) (*opensubtitles.SearchSubtitlesResponse, error) {
	if file != "" {
		hash, err := fileops.MovieHashString(file)
		switch {
		case err == nil:
			logrus.Debugf("movie hash for %s: %s", file, hash)
			resp, err := api.SearchSubtitles(ctx, opensubtitles.SearchSubtitlesParams{
				Moviehash: opensubtitles.String(hash),
				Languages: opensubtitles.String(lang),
			})
			if err != nil {
				return nil, err
			}
			if len(resp.Data) > 0 {
				return resp, nil
			}
			logrus.Infof("no hash matches for %s, falling back to filename search", file)
		case errors.Is(err, fileops.ErrFileTooSmall):
			logrus.Warnf("%s is too small for hash lookup, falling back to filename search", file)
		default:
			return nil, err
		}
		if query == "" {
			query = titleFromFilename(file)
		}
	}

	return api.SearchSubtitles(ctx, opensubtitles.SearchSubtitlesParams{
		Query:     opensubtitles.String(query),
		Languages: opensubtitles.String(lang),
	})
}

// titleFromFilename extracts a search query from a release filename.
func titleFromFilename(file string) string {
	name := filepath.Base(file)
	if parsed, err := ptn.Parse(name); err == nil && parsed.Title != "" {
		return parsed.Title
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(base, ".", " ")
}

// subtitleRow flattens a subtitle entry into the columns of the search
// listing.
func subtitleRow(sub opensubtitles.Subtitle) []string {
	attrs := sub.Attributes
	title := attrs.FeatureDetails.MovieName
	if title == "" {
		title = attrs.FeatureDetails.Title
	}
	fileID, fileName := "", ""
	if len(attrs.Files) > 0 {
		fileID = strconv.Itoa(attrs.Files[0].FileID)
		fileName = attrs.Files[0].FileName
	}
	return []string{
		title,
		strconv.Itoa(attrs.FeatureDetails.Year),
		string(attrs.Language),
		fileID,
		fileName,
	}
}
