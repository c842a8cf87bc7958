package cmd

import (
	"os"
	"path/filepath"
	"testing"

	opensubtitles "github.com/dusking/opensubtitles-go"
	"github.com/dusking/opensubtitles-go/pkg/fileops"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(title string, year int, lang string, fileID int, fileName string) *opensubtitles.SearchSubtitlesResponse {
	sub := opensubtitles.Subtitle{
		ApiDataWrapper: opensubtitles.ApiDataWrapper{ID: "123", Type: "subtitle"},
		Attributes: opensubtitles.SubtitleAttributes{
			SubtitleID: "123",
			Language:   opensubtitles.LanguageCode(lang),
			FeatureDetails: opensubtitles.SubtitleFeatureDetails{
				FeatureType: "Movie",
				Title:       title,
				MovieName:   title,
				Year:        year,
			},
			Files: []opensubtitles.SubtitleFile{{FileID: fileID, CDNumber: 1, FileName: fileName}},
		},
	}
	return &opensubtitles.SearchSubtitlesResponse{
		PaginatedResponse: opensubtitles.PaginatedResponse{TotalPages: 1, TotalCount: 1, PerPage: 60, Page: 1},
		Data:              []opensubtitles.Subtitle{sub},
	}
}

func emptySearchFixture() *opensubtitles.SearchSubtitlesResponse {
	return &opensubtitles.SearchSubtitlesResponse{
		PaginatedResponse: opensubtitles.PaginatedResponse{TotalPages: 1, Page: 1},
	}
}

func TestSearchRequiresQueryOrFile(t *testing.T) {
	setupCommandTest(t, &stubAPI{})

	err := runCommand(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--query or --file")
}

func TestSearchByQuery(t *testing.T) {
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{
		searchFixture("Inception", 2010, "en", 928281, "Inception.2010.srt"),
	}}
	out := setupCommandTest(t, stub)

	require.NoError(t, runCommand(t, "search", "-q", "Inception"))

	require.Len(t, stub.searchCalls, 1)
	params := stub.searchCalls[0]
	require.NotNil(t, params.Query)
	assert.Equal(t, "Inception", *params.Query)
	require.NotNil(t, params.Languages)
	assert.Equal(t, "en", *params.Languages)
	assert.Nil(t, params.Moviehash)

	assert.Contains(t, out.String(), "Inception")
	assert.Contains(t, out.String(), "928281")
	assert.Contains(t, out.String(), "Inception.2010.srt")
}

func TestSearchUsesConfiguredLanguage(t *testing.T) {
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{
		searchFixture("Inception", 2010, "fr", 928281, "Inception.srt"),
	}}
	setupCommandTest(t, stub)
	viper.Set(cfgKeyLanguage, "fr")

	require.NoError(t, runCommand(t, "search", "-q", "Inception"))

	require.Len(t, stub.searchCalls, 1)
	require.NotNil(t, stub.searchCalls[0].Languages)
	assert.Equal(t, "fr", *stub.searchCalls[0].Languages)
}

func TestSearchNoResults(t *testing.T) {
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{emptySearchFixture()}}
	out := setupCommandTest(t, stub)

	require.NoError(t, runCommand(t, "search", "-q", "nothing matches this"))

	assert.Contains(t, out.String(), "No subtitles found")
}

func TestSearchByFileUsesMovieHash(t *testing.T) {
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{
		searchFixture("The Matrix", 1999, "en", 555, "The.Matrix.srt"),
	}}
	setupCommandTest(t, stub)

	movie := filepath.Join(t.TempDir(), "The.Matrix.1999.1080p.BluRay.x264.mkv")
	require.NoError(t, os.WriteFile(movie, make([]byte, fileops.MinFileSize), 0o644))
	wantHash, err := fileops.MovieHashString(movie)
	require.NoError(t, err)

	require.NoError(t, runCommand(t, "search", "-f", movie))

	require.Len(t, stub.searchCalls, 1)
	params := stub.searchCalls[0]
	require.NotNil(t, params.Moviehash)
	assert.Equal(t, wantHash, *params.Moviehash)
	assert.Nil(t, params.Query)
}

func TestSearchByFileFallsBackToFilename(t *testing.T) {
	// No hash matches: the title parsed from the release name is retried as
	// a text query.
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{
		emptySearchFixture(),
		searchFixture("The Matrix", 1999, "en", 555, "The.Matrix.srt"),
	}}
	out := setupCommandTest(t, stub)

	movie := filepath.Join(t.TempDir(), "The.Matrix.1999.1080p.BluRay.x264.mkv")
	require.NoError(t, os.WriteFile(movie, make([]byte, fileops.MinFileSize), 0o644))

	require.NoError(t, runCommand(t, "search", "-f", movie))

	require.Len(t, stub.searchCalls, 2)
	assert.NotNil(t, stub.searchCalls[0].Moviehash)
	second := stub.searchCalls[1]
	require.NotNil(t, second.Query)
	assert.Contains(t, *second.Query, "The Matrix")
	assert.Nil(t, second.Moviehash)
	assert.Contains(t, out.String(), "The Matrix")
}

func TestSearchByFileTooSmallFallsBack(t *testing.T) {
	// Files below the fingerprint minimum skip the hash lookup entirely.
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{
		searchFixture("The Matrix", 1999, "en", 555, "The.Matrix.srt"),
	}}
	setupCommandTest(t, stub)

	movie := filepath.Join(t.TempDir(), "The.Matrix.1999.1080p.BluRay.x264.mkv")
	require.NoError(t, os.WriteFile(movie, make([]byte, 1024), 0o644))

	require.NoError(t, runCommand(t, "search", "-f", movie))

	require.Len(t, stub.searchCalls, 1)
	assert.Nil(t, stub.searchCalls[0].Moviehash)
	require.NotNil(t, stub.searchCalls[0].Query)
	assert.Contains(t, *stub.searchCalls[0].Query, "The Matrix")
}

func TestSearchMissingFile(t *testing.T) {
	setupCommandTest(t, &stubAPI{})

	err := runCommand(t, "search", "-f", filepath.Join(t.TempDir(), "missing.mkv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtitle search failed")
}

func TestSearchReportsMorePages(t *testing.T) {
	resp := searchFixture("Inception", 2010, "en", 928281, "Inception.srt")
	resp.TotalPages = 3
	stub := &stubAPI{searchQueue: []*opensubtitles.SearchSubtitlesResponse{resp}}
	out := setupCommandTest(t, stub)

	require.NoError(t, runCommand(t, "search", "-q", "Inception"))

	assert.Contains(t, out.String(), "page 1 of 3")
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "The Matrix", titleFromFilename("The.Matrix.1999.1080p.BluRay.x264-GRP.mkv"))
	assert.Equal(t, "The Matrix", titleFromFilename("/movies/The.Matrix.1999.1080p.BluRay.x264-GRP.mkv"))
}
