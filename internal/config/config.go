package config

import (
	"time"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Learning LearningConfig `yaml:"learning"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LearningConfig holds the tunables of the learning engine.
type LearningConfig struct {
	ReviewRatio        float64 `yaml:"review_ratio"         env:"LEARNING_REVIEW_RATIO"         env-default:"0.3"`
	DueSampleSize      int     `yaml:"due_sample_size"      env:"LEARNING_DUE_SAMPLE_SIZE"      env-default:"20"`
	FallbackSampleSize int     `yaml:"fallback_sample_size" env:"LEARNING_FALLBACK_SAMPLE_SIZE" env-default:"20"`
	WrongOptionCount   int     `yaml:"wrong_option_count"   env:"LEARNING_WRONG_OPTION_COUNT"   env-default:"2"`
	SessionSize        int     `yaml:"session_size"         env:"LEARNING_SESSION_SIZE"         env-default:"10"`
	CaseSensitive      bool    `yaml:"case_sensitive"       env:"LEARNING_CASE_SENSITIVE"       env-default:"false"`
	TypoTolerance      int     `yaml:"typo_tolerance"       env:"LEARNING_TYPO_TOLERANCE"       env-default:"1"`
}

// ToDomain converts the config section into the domain tunables consumed
// by the learning service.
func (c LearningConfig) ToDomain() domain.LearningConfig {
	return domain.LearningConfig{
		ReviewRatio:        c.ReviewRatio,
		DueSampleSize:      c.DueSampleSize,
		FallbackSampleSize: c.FallbackSampleSize,
		WrongOptionCount:   c.WrongOptionCount,
		SessionSize:        c.SessionSize,
		CaseSensitive:      c.CaseSensitive,
		TypoTolerance:      c.TypoTolerance,
	}
}
