package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceDynamoDB = "dynamodb"
	SourceFile     = "file"
)

// Config is read from the environment (and .env, loaded by main).
//
// Supported env vars:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT, S3_ENDPOINT (optional; e.g. http://localstack:4566)
//   - QUOTES_TABLE (default: quotes)
//   - QUOTE_SOURCE (dynamodb | file, default: dynamodb)
//   - QUOTES_DIR (default: ./quotes)
//   - MEDIA_ROOT (default: .)
//   - MEDIA_FETCH_TIMEOUT (default: 5s), MEDIA_FETCH_CONCURRENCY (default: 4)
//   - MEDIA_S3_ENABLED (default: true; s3:// photo URLs are skipped when false)
//   - RENDER_TIMEZONE (default: America/Sao_Paulo)
//   - LOG_LEVEL (default: info), LOG_FORMAT (json | console, default: console)
type Config struct {
	AWS    AWSConfig
	Quotes QuotesConfig
	Media  MediaConfig
	Render RenderConfig
	Log    LogConfig
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	S3Endpoint       string
}

type QuotesConfig struct {
	Source string
	Table  string
	Dir    string
}

type MediaConfig struct {
	Root         string
	FetchTimeout time.Duration
	Concurrency  int
	S3Enabled    bool
}

type RenderConfig struct {
	Timezone string
}

type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("quotes_table", "quotes")
	v.SetDefault("quote_source", SourceDynamoDB)
	v.SetDefault("quotes_dir", "./quotes")
	v.SetDefault("media_root", ".")
	v.SetDefault("media_fetch_timeout", "5s")
	v.SetDefault("media_fetch_concurrency", 4)
	v.SetDefault("media_s3_enabled", true)
	v.SetDefault("render_timezone", "America/Sao_Paulo")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AWS: AWSConfig{
			Region:           v.GetString("aws_region"),
			AccessKeyID:      v.GetString("aws_access_key_id"),
			SecretAccessKey:  v.GetString("aws_secret_access_key"),
			DynamoDBEndpoint: v.GetString("dynamodb_endpoint"),
			S3Endpoint:       v.GetString("s3_endpoint"),
		},
		Quotes: QuotesConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("quote_source"))),
			Table:  v.GetString("quotes_table"),
			Dir:    v.GetString("quotes_dir"),
		},
		Media: MediaConfig{
			Root:         v.GetString("media_root"),
			FetchTimeout: v.GetDuration("media_fetch_timeout"),
			Concurrency:  v.GetInt("media_fetch_concurrency"),
			S3Enabled:    v.GetBool("media_s3_enabled"),
		},
		Render: RenderConfig{
			Timezone: v.GetString("render_timezone"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Quotes.Source {
	case SourceDynamoDB, SourceFile:
	default:
		return fmt.Errorf("invalid QUOTE_SOURCE %q: want %s or %s", c.Quotes.Source, SourceDynamoDB, SourceFile)
	}
	if c.Media.FetchTimeout <= 0 {
		return fmt.Errorf("invalid MEDIA_FETCH_TIMEOUT %s", c.Media.FetchTimeout)
	}
	if c.Media.Concurrency < 1 {
		return fmt.Errorf("invalid MEDIA_FETCH_CONCURRENCY %d", c.Media.Concurrency)
	}
	return nil
}

// Location resolves the render time zone, falling back to Brasília time
// (UTC-3) when the zone database is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Render.Timezone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}
