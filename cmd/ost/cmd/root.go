// Package cmd implements the ost command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "ost"
	appVersion = "0.1.0"
)

// Configuration keys.
const (
	cfgKeyAPIKey   = "opensubtitles.apikey"
	cfgKeyUsername = "opensubtitles.username"
	cfgKeyPassword = "opensubtitles.password"
	cfgKeyLanguage = "opensubtitles.language"
)

var (
	cfgFile   string
	verbosity int
)

// RootCmd is the base command. Exported for use in tests.
var RootCmd = &cobra.Command{
	Use:   "ost",
	Short: "Search and download subtitles from OpenSubtitles.com",
	Long: `ost searches OpenSubtitles.com for subtitles by text query or by the
content hash of a local movie file, and downloads them next to the movie.

Credentials are kept in a local config file; run "ost set-cred" first.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/ost/config.yaml)")
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable)")
}

// configDir is the directory holding the config file and download history.
func configDir() string {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, ".config", appName)
}

// historyPath locates the download history database. Variable so tests can
// point it at a temp directory.
var historyPath = func() string {
	return filepath.Join(configDir(), "history.db")
}

// initConfig reads in the config file and matching OST_* env variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error reading config file (%s): %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// saveConfig writes the current viper settings back to the config file.
func saveConfig() (string, error) {
	path := cfgFile
	if path == "" {
		dir := configDir()
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("creating config directory %q: %w", dir, err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return "", err
	}
	return path, nil
}

// configureLogging maps -v occurrences onto logrus levels: warn by default,
// then info, debug, trace.
func configureLogging() {
	level := logrus.WarnLevel + logrus.Level(verbosity)
	if level > logrus.TraceLevel {
		level = logrus.TraceLevel
	}
	logrus.SetLevel(level)
}
