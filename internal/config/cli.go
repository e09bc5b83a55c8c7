package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// CLI config keys
const (
	KeyCLIChunkSize = "chunk_size"
	KeyCLILang      = "lang"
	KeyCLIExportDir = "export_dir"
	KeyCLILogLevel  = "log_level"
	KeyCLINoDelay   = "no_delay"
)

// CLI config sources
const (
	EnvPrefix       = "YTPLAYLIST"
	ConfigName      = "yt-playlist"
	ConfigType      = "toml"
	DefaultLogLevel = "info"
)

// CLIConfig is the resolved configuration of the command-line tool
type CLIConfig struct {
	ChunkSize string `toml:"chunk_size" mapstructure:"chunk_size"`
	Lang      string `toml:"lang" mapstructure:"lang"`
	ExportDir string `toml:"export_dir" mapstructure:"export_dir"`
	LogLevel  string `toml:"log_level" mapstructure:"log_level"`
	NoDelay   bool   `toml:"no_delay" mapstructure:"no_delay"`
}

// ParsedChunkSize returns the configured chunk size
func (c CLIConfig) ParsedChunkSize() (model.ChunkSize, error) {
	return model.ParseChunkSize(c.ChunkSize)
}

// RegisterFlags adds the config flags to cmd and binds them to v
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "config file path")
	flags.StringP("chunk-size", "n", "", "videos per playlist (number or \"unlimited\")")
	flags.StringP("lang", "l", "", "language for CSV headers and labels (en, ru, pt, ja)")
	flags.String("export-dir", "", "directory for CSV exports")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.Bool("no-delay", false, "skip progress pacing")

	bindFlags(cmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	v.BindPFlag(KeyCLIChunkSize, flags.Lookup("chunk-size"))
	v.BindPFlag(KeyCLILang, flags.Lookup("lang"))
	v.BindPFlag(KeyCLIExportDir, flags.Lookup("export-dir"))
	v.BindPFlag(KeyCLILogLevel, flags.Lookup("log-level"))
	v.BindPFlag(KeyCLINoDelay, flags.Lookup("no-delay"))
}

// GetConfigFile returns the --config flag value
func GetConfigFile(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}

// Load resolves flags, environment, config file and defaults into a CLIConfig.
// A missing config file is only an error when configFile is set explicitly.
func Load(v *viper.Viper, configFile string) (CLIConfig, error) {
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/yt-playlist-maker")
	}

	exportDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		exportDir = "."
	}

	defaultConfigs := map[string]any{
		KeyCLIChunkSize: model.DefaultChunkSize.String(),
		KeyCLILang:      "en",
		KeyCLIExportDir: exportDir,
		KeyCLILogLevel:  DefaultLogLevel,
		KeyCLINoDelay:   false,
	}
	for key, value := range defaultConfigs {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return CLIConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.ParsedChunkSize(); err != nil {
		return CLIConfig{}, err
	}
	return cfg, nil
}
