// Package commands implements the plotsite command line.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DrCognito/StaticAnalysisSite/internal/config"
	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/version"
)

// app carries state shared by every subcommand of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     *config.Config
}

// overrides maps viper keys to the config fields they replace. Flags win over
// the environment, which wins over the config file.
var overrides = []struct {
	key   string
	apply func(v *viper.Viper, key string, c *config.Config)
}{
	{"plot_directory", func(v *viper.Viper, k string, c *config.Config) { c.PlotDirectory = v.GetString(k) }},
	{"site.base_url", func(v *viper.Viper, k string, c *config.Config) { c.Site.BaseURL = config.NormalizeBaseURL(v.GetString(k)) }},
	{"server.host", func(v *viper.Viper, k string, c *config.Config) { c.Server.Host = v.GetString(k) }},
	{"server.port", func(v *viper.Viper, k string, c *config.Config) { c.Server.Port = v.GetInt(k) }},
	{"export.output_dir", func(v *viper.Viper, k string, c *config.Config) { c.Export.OutputDir = v.GetString(k) }},
	{"export.incremental", func(v *viper.Viper, k string, c *config.Config) { c.Export.Incremental = v.GetBool(k) }},
	{"export.copy_plots", func(v *viper.Viper, k string, c *config.Config) { c.Export.CopyPlots = v.GetBool(k) }},
	{"logging.level", func(v *viper.Viper, k string, c *config.Config) { c.Logging.Level = v.GetString(k) }},
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "plotsite",
		Short:         "Browse and export Dota 2 team analysis plots",
		Version:       version.GetFullVersionInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before the config")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("plot-dir", "", "directory holding per-team metadata and plots")
	rootCmd.PersistentFlags().String("base-url", "", "URL path the site is served under")

	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("plot_directory", rootCmd.PersistentFlags().Lookup("plot-dir"))
	_ = a.v.BindPFlag("site.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = a.v.BindEnv("plot_directory", config.PlotDirectoryEnv)

	rootCmd.AddCommand(
		a.newServeCmd(),
		a.newFreezeCmd(),
		a.newTeamsCmd(),
		a.newInitConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	err := NewRootCmd().Execute()
	logging.GetLogger().Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads setup.env, the YAML file and then applies env and flag
// overrides through viper
func (a *app) loadConfig() error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	for _, o := range overrides {
		if a.v.IsSet(o.key) {
			o.apply(a.v, o.key, cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if err := logging.Initialize(cfg.Logging.ToLoggingConfig()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("Configuration loaded",
		"config", a.cfgFile,
		"plot_directory", cfg.PlotDirectory,
		"base_url", cfg.Site.BaseURL)

	return nil
}
