package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	opensubtitles "github.com/dusking/opensubtitles-go"
	"github.com/spf13/viper"
)

// stubAPI substitutes the real client in command tests.
type stubAPI struct {
	searchCalls []opensubtitles.SearchSubtitlesParams
	searchQueue []*opensubtitles.SearchSubtitlesResponse
	searchErr   error

	downloadCalls []downloadCall
	downloadResp  *opensubtitles.DownloadResponse
	downloadErr   error

	userInfo *opensubtitles.GetUserInfoResponse
}

type downloadCall struct {
	params opensubtitles.DownloadRequest
	dest   string
}

func (s *stubAPI) Login(ctx context.Context, params opensubtitles.LoginRequest) (*opensubtitles.LoginResponse, error) {
	return &opensubtitles.LoginResponse{}, nil
}

func (s *stubAPI) SearchSubtitles(ctx context.Context, params opensubtitles.SearchSubtitlesParams) (*opensubtitles.SearchSubtitlesResponse, error) {
	s.searchCalls = append(s.searchCalls, params)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	resp := s.searchQueue[0]
	if len(s.searchQueue) > 1 {
		s.searchQueue = s.searchQueue[1:]
	}
	return resp, nil
}

func (s *stubAPI) Download(ctx context.Context, params opensubtitles.DownloadRequest) (*opensubtitles.DownloadResponse, error) {
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	return s.downloadResp, nil
}

func (s *stubAPI) DownloadToFile(ctx context.Context, params opensubtitles.DownloadRequest, dest string) (*opensubtitles.DownloadResponse, error) {
	s.downloadCalls = append(s.downloadCalls, downloadCall{params: params, dest: dest})
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	if err := os.WriteFile(dest, []byte("stub subtitle"), 0o644); err != nil {
		return nil, err
	}
	return s.downloadResp, nil
}

func (s *stubAPI) GetUserInfo(ctx context.Context) (*opensubtitles.GetUserInfoResponse, error) {
	return s.userInfo, nil
}

// setupCommandTest isolates global command state: fresh viper instance,
// temp config file and history database, restored API factory.
func setupCommandTest(t *testing.T, api subtitleAPI) *bytes.Buffer {
	t.Helper()

	viper.Reset()
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")

	hp := filepath.Join(t.TempDir(), "history.db")
	origHistoryPath := historyPath
	historyPath = func() string { return hp }

	origFactory := newAPIClient
	if api != nil {
		newAPIClient = func(ctx context.Context) (subtitleAPI, error) { return api, nil }
	}

	// Flag variables persist between tests.
	searchQuery, searchLanguage, searchFile = "", "", ""
	downloadFileID, downloadFile, downloadLanguage, downloadOutput, downloadForce = 0, "", "", "", false

	t.Cleanup(func() {
		newAPIClient = origFactory
		historyPath = origHistoryPath
		viper.Reset()
		cfgFile = ""
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	})

	buf := &bytes.Buffer{}
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	return buf
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}
