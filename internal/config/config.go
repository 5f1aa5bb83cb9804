package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SIGMA"

type Config struct {
	Port        string            `mapstructure:"port"`
	Log         LogConfig         `mapstructure:"log"`
	DB          DBConfig          `mapstructure:"db"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Cycle       CycleConfig       `mapstructure:"cycle"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
	Seed        SeedConfig        `mapstructure:"seed"`
	Stream      StreamConfig      `mapstructure:"stream"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	Admin      AdminConfig   `mapstructure:"admin"`
}

// AdminConfig is the account created when no users exist yet.
type AdminConfig struct {
	Matricula string `mapstructure:"matricula"`
	Password  string `mapstructure:"password"`
	FullName  string `mapstructure:"full_name"`
}

type CycleConfig struct {
	CheckInterval time.Duration `mapstructure:"check_interval"`
}

type MaintenanceConfig struct {
	// MarksCompleted makes a maintenance record also complete its element.
	MarksCompleted bool `mapstructure:"marks_completed"`
}

type SeedConfig struct {
	Path string `mapstructure:"path"`
}

type StreamConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "sigma.db")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.admin.matricula", "")
	v.SetDefault("auth.admin.password", "")
	v.SetDefault("auth.admin.full_name", "")
	v.SetDefault("cycle.check_interval", time.Hour)
	v.SetDefault("maintenance.marks_completed", false)
	v.SetDefault("seed.path", "")
	v.SetDefault("stream.interval", 5*time.Second)
}

// Load reads config.yml from the given directories (default "configs").
// A missing file is not an error; defaults and SIGMA_* env vars still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
