// Package config resolves service settings from flags, TWMJ_* environment
// variables and an optional twmj.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TWMJ"
	configName = "twmj"
	configType = "toml"
	configDir  = "twmj"

	KeyListen           = "server.listen"
	KeyShutdownTimeout  = "server.shutdown_timeout"
	KeySlots            = "inference.slots"
	KeyInferenceURL     = "inference.url"
	KeyInferenceTimeout = "inference.timeout"
	KeyTemplatesDir     = "templates.dir"
	KeyTemplatesTTL     = "templates.ttl"
	KeyReapInterval     = "templates.reap_interval"
	KeyMaxFrames        = "scan.max_frames"
	KeyMaxFrameBytes    = "scan.max_frame_bytes"
	KeyScoringProfile   = "scoring.profile"
	KeyServerURL        = "client.server"
)

type Config struct {
	Server    ServerConfig
	Inference InferenceConfig
	Templates TemplatesConfig
	Scan      ScanConfig
	Scoring   ScoringConfig
	Client    ClientConfig
}

type ServerConfig struct {
	Listen          string
	ShutdownTimeout time.Duration
}

type InferenceConfig struct {
	Slots   int
	URL     string
	Timeout time.Duration
}

type TemplatesConfig struct {
	Dir          string
	TTL          time.Duration
	ReapInterval time.Duration
}

type ScanConfig struct {
	MaxFrames     int
	MaxFrameBytes int64
}

type ScoringConfig struct {
	Profile string
}

// ClientConfig is used by the commands that call a running server.
type ClientConfig struct {
	Server string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyListen, ":8000")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeySlots, 2)
	v.SetDefault(KeyInferenceURL, "http://127.0.0.1:9000")
	v.SetDefault(KeyInferenceTimeout, 30*time.Second)
	v.SetDefault(KeyTemplatesDir, "./temporary_templates")
	v.SetDefault(KeyTemplatesTTL, 180*time.Second)
	v.SetDefault(KeyReapInterval, 30*time.Second)
	v.SetDefault(KeyMaxFrames, 0)
	v.SetDefault(KeyMaxFrameBytes, 16<<20)
	v.SetDefault(KeyScoringProfile, "")
	v.SetDefault(KeyServerURL, "http://127.0.0.1:8000")
}

// Init prepares v for Load: defaults, environment binding and the config file.
// An explicit configFile must exist; otherwise a missing twmj.toml is fine.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if userDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userDir, configDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
		SetDefaults(v)
	}

	cfg := Config{
		Server: ServerConfig{
			Listen:          v.GetString(KeyListen),
			ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
		},
		Inference: InferenceConfig{
			Slots:   v.GetInt(KeySlots),
			URL:     v.GetString(KeyInferenceURL),
			Timeout: v.GetDuration(KeyInferenceTimeout),
		},
		Templates: TemplatesConfig{
			Dir:          v.GetString(KeyTemplatesDir),
			TTL:          v.GetDuration(KeyTemplatesTTL),
			ReapInterval: v.GetDuration(KeyReapInterval),
		},
		Scan: ScanConfig{
			MaxFrames:     v.GetInt(KeyMaxFrames),
			MaxFrameBytes: v.GetInt64(KeyMaxFrameBytes),
		},
		Scoring: ScoringConfig{
			Profile: v.GetString(KeyScoringProfile),
		},
		Client: ClientConfig{
			Server: v.GetString(KeyServerURL),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Listen) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyListen))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyShutdownTimeout))
	}
	if c.Inference.Slots < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", KeySlots, c.Inference.Slots))
	}
	if c.Inference.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyInferenceTimeout))
	}
	if strings.TrimSpace(c.Templates.Dir) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyTemplatesDir))
	}
	if c.Templates.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyTemplatesTTL))
	}
	if c.Templates.ReapInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyReapInterval))
	}
	if c.Scan.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyMaxFrames))
	}
	if c.Scan.MaxFrameBytes <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyMaxFrameBytes))
	}
	if strings.TrimSpace(c.Client.Server) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyServerURL))
	}

	return errors.Join(errs...)
}
