package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConcurrency = 4

var rootCmd = &cobra.Command{
	Use:          "ghcas",
	Short:        "GitHub content-addressed asset store",
	Long:         "Upload assets to a GitHub branch, print their CDN or raw URLs and keep a local record of what was uploaded.",
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/ghcas/config.yaml)")
	flags.String("token", "", "GitHub access token")
	flags.String("owner", "", "repository owner")
	flags.String("repo", "", "repository name")
	flags.String("branch", "", "branch assets are committed to")
	flags.String("store-path", "", "directory inside the branch")
	flags.Bool("cdn", true, "serve URLs through jsDelivr instead of raw.githubusercontent.com")
	flags.String("api-url", "", "GitHub API endpoint (default: https://api.github.com)")
	flags.String("db", "", "record database (default: ~/.local/share/ghcas/records.db)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("token", flags.Lookup("token"))
	viper.BindPFlag("owner", flags.Lookup("owner"))
	viper.BindPFlag("repo", flags.Lookup("repo"))
	viper.BindPFlag("branch", flags.Lookup("branch"))
	viper.BindPFlag("store_path", flags.Lookup("store-path"))
	viper.BindPFlag("cdn", flags.Lookup("cdn"))
	viper.BindPFlag("api_url", flags.Lookup("api-url"))
	viper.BindPFlag("db", flags.Lookup("db"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GHCAS")
	viper.AutomaticEnv()
	viper.SetDefault("cdn", true)
	viper.SetDefault("db", filepath.Join(defaultDataDir(), "records.db"))
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("concurrency", defaultConcurrency)

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ghcas")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "ghcas")
	}
	return ".ghcas"
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ghcas")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "ghcas")
	}
	return ".ghcas"
}
