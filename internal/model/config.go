package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// CalorieConfig holds calorie log settings.
type CalorieConfig struct {
	// DailyGoal is the calorie target the progress bar is measured against.
	DailyGoal int `mapstructure:"daily_goal" yaml:"daily_goal"`
}

// StorageConfig controls the optional SQLite persistence layer.
type StorageConfig struct {
	// Persist enables the database. When false every launch starts from
	// the built-in sample data and nothing is written to disk.
	Persist bool   `mapstructure:"persist" yaml:"persist"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// EmailShareConfig describes the IMAP account the grocery list is saved to
// as a draft. The password is kept in the system keyring, not here.
type EmailShareConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     string `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	From     string `mapstructure:"from" yaml:"from"`
	To       string `mapstructure:"to" yaml:"to"`
	Mailbox  string `mapstructure:"mailbox" yaml:"mailbox"`
	TLS      bool   `mapstructure:"tls" yaml:"tls"`
}

// Configured reports whether enough settings are present to connect.
func (c EmailShareConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.To != ""
}

// ShareConfig groups the sharing integrations.
type ShareConfig struct {
	Email EmailShareConfig `mapstructure:"email" yaml:"email"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Calories CalorieConfig `mapstructure:"calories" yaml:"calories"`
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Display  DisplayConfig `mapstructure:"display" yaml:"display"`
	Share    ShareConfig   `mapstructure:"share" yaml:"share"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/kitchen/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "kitchen", "config.yaml")
}

func defaultDataPath(parts ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return parts[len(parts)-1]
	}
	return filepath.Join(append([]string{home}, parts...)...)
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Calories: CalorieConfig{DailyGoal: 2000},
		Storage: StorageConfig{
			Persist: false,
			Path:    defaultDataPath(".local", "share", "kitchen", "kitchen.db"),
		},
		Log: LogConfig{
			Path:  defaultDataPath(".local", "state", "kitchen", "kitchen.log"),
			Level: "info",
		},
		Display: DisplayConfig{Theme: "default"},
		Share: ShareConfig{
			Email: EmailShareConfig{Port: "993", Mailbox: "Drafts", TLS: true},
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values may be overridden with KITCHEN_* environment variables, e.g.
// KITCHEN_CALORIES_DAILY_GOAL. If the file does not exist, defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("KITCHEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can resolve it on Unmarshal.
	v.SetDefault("calories.daily_goal", def.Calories.DailyGoal)
	v.SetDefault("storage.persist", def.Storage.Persist)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("display.theme", def.Display.Theme)
	v.SetDefault("share.email.host", "")
	v.SetDefault("share.email.port", def.Share.Email.Port)
	v.SetDefault("share.email.username", "")
	v.SetDefault("share.email.from", "")
	v.SetDefault("share.email.to", "")
	v.SetDefault("share.email.mailbox", def.Share.Email.Mailbox)
	v.SetDefault("share.email.tls", def.Share.Email.TLS)

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Calories.DailyGoal <= 0 {
		return nil, fmt.Errorf("calories.daily_goal must be positive, got %d", cfg.Calories.DailyGoal)
	}
	if cfg.Share.Email.From == "" {
		cfg.Share.Email.From = cfg.Share.Email.Username
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("calories", cfg.Calories)
	v.Set("storage", cfg.Storage)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)
	v.Set("share", cfg.Share)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
