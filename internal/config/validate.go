package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Learning.validate(); err != nil {
		return fmt.Errorf("learning: %w", err)
	}

	return nil
}

func (c *LearningConfig) validate() error {
	if c.ReviewRatio < 0 || c.ReviewRatio > 1 {
		return fmt.Errorf("review_ratio must be in [0, 1] (got %v)", c.ReviewRatio)
	}
	if c.DueSampleSize <= 0 {
		return fmt.Errorf("due_sample_size must be > 0 (got %d)", c.DueSampleSize)
	}
	if c.FallbackSampleSize <= 0 {
		return fmt.Errorf("fallback_sample_size must be > 0 (got %d)", c.FallbackSampleSize)
	}
	if c.WrongOptionCount <= 0 {
		return fmt.Errorf("wrong_option_count must be > 0 (got %d)", c.WrongOptionCount)
	}
	if c.SessionSize <= 0 {
		return fmt.Errorf("session_size must be > 0 (got %d)", c.SessionSize)
	}
	if c.TypoTolerance < 0 {
		return fmt.Errorf("typo_tolerance must be >= 0 (got %d)", c.TypoTolerance)
	}
	return nil
}
