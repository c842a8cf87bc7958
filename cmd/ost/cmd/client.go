package cmd

import (
	"context"
	"fmt"

	opensubtitles "github.com/dusking/opensubtitles-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// subtitleAPI is the slice of the opensubtitles client the commands use.
type subtitleAPI interface {
	Login(ctx context.Context, params opensubtitles.LoginRequest) (*opensubtitles.LoginResponse, error)
	SearchSubtitles(ctx context.Context, params opensubtitles.SearchSubtitlesParams) (*opensubtitles.SearchSubtitlesResponse, error)
	Download(ctx context.Context, params opensubtitles.DownloadRequest) (*opensubtitles.DownloadResponse, error)
	DownloadToFile(ctx context.Context, params opensubtitles.DownloadRequest, dest string) (*opensubtitles.DownloadResponse, error)
	GetUserInfo(ctx context.Context) (*opensubtitles.GetUserInfoResponse, error)
}

// newAPIClient builds a client from the stored configuration and logs in
// when username/password are present. Swapped out by command tests.
var newAPIClient = func(ctx context.Context) (subtitleAPI, error) {
	apiKey := viper.GetString(cfgKeyAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("OpenSubtitles API key not configured; run %q or set OST_OPENSUBTITLES_APIKEY", "ost set-cred")
	}

	client, err := opensubtitles.NewClient(opensubtitles.Config{
		ApiKey:    apiKey,
		UserAgent: fmt.Sprintf("%s v%s", appName, appVersion),
	})
	if err != nil {
		return nil, err
	}

	username := viper.GetString(cfgKeyUsername)
	password := viper.GetString(cfgKeyPassword)
	if username != "" && password != "" {
		if _, err := client.Login(ctx, opensubtitles.LoginRequest{Username: username, Password: password}); err != nil {
			return nil, fmt.Errorf("login as %s failed: %w", username, err)
		}
		logrus.Debugf("logged in as %s", username)
	}
	return client, nil
}

// configuredLanguage resolves the subtitle language: command flag, then
// config file, then "en".
func configuredLanguage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if lang := viper.GetString(cfgKeyLanguage); lang != "" {
		return lang
	}
	return "en"
}
