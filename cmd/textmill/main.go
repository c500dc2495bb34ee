// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the textmill CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textmill/internal/secrets"
	"github.com/pdiddy/textmill/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is shared by all subcommands; --verbose raises it to debug.
var logger = logrus.New()

// loadedSecrets holds keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the textmill CLI.
var rootCmd = &cobra.Command{
	Use:   "textmill",
	Short: "Convert documents between markup formats",
	Long: `textmill converts documents between lightweight markup formats
(Markdown variants, HTML, plain text) in-process, and delegates to a
remote conversion service for formats it cannot handle natively
(DOCX, ODT, PPTX, LaTeX, and others).

Routing is governed by a mode: auto tries the local transcoder first and
falls back to the remote service, local never contacts the service, and
remote always delegates. Reference templates imported with the templates
subcommand style DOCX/ODT/PPTX output produced by the service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		logger.SetOutput(os.Stderr)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./textmill.yaml or ~/.config/textmill/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("textmill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "textmill"))
		}
	}

	viper.SetDefault("remote.base_url", "http://localhost:3030")
	viper.SetDefault("remote.connect_timeout", 10*time.Second)
	viper.SetDefault("remote.request_timeout", 120*time.Second)
	viper.SetDefault("remote.user_agent", "textmill/"+version)
	viper.SetDefault("router.mode", string(types.ModeAuto))
	viper.SetDefault("templates.templates_dir", "templates")

	viper.SetEnvPrefix("TEXTMILL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// remoteConfig assembles the remote-service settings from viper and the
// loaded secrets.
func remoteConfig() types.RemoteConfig {
	cfg := types.RemoteConfig{
		HTTPConfig: types.HTTPConfig{
			ConnectTimeout: viper.GetDuration("remote.connect_timeout"),
			RequestTimeout: viper.GetDuration("remote.request_timeout"),
			UserAgent:      viper.GetString("remote.user_agent"),
		},
		BaseURL: viper.GetString("remote.base_url"),
		APIKey:  viper.GetString("remote.api_key"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = loadedSecrets["converter-api-key"]
	}
	return cfg
}

// templateStoreConfig assembles the template-store settings from viper.
func templateStoreConfig() types.TemplateStoreConfig {
	return types.TemplateStoreConfig{
		TemplatesDir: viper.GetString("templates.templates_dir"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
