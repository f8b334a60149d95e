package config

import (
	"errors"
	"fmt"
)

// Validate checks a configuration for values the chrome layer cannot
// operate with. It returns all problems at once so a hand-edited config
// file can be fixed in one pass.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Chrome.CaptionHeight <= 0 {
		errs = append(errs, fmt.Errorf("chrome.caption_height must be positive, got %d", cfg.Chrome.CaptionHeight))
	}
	if cfg.Chrome.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("chrome.border_width must not be negative, got %d", cfg.Chrome.BorderWidth))
	}
	if cfg.Chrome.ButtonWidth <= 0 {
		errs = append(errs, fmt.Errorf("chrome.button_width must be positive, got %d", cfg.Chrome.ButtonWidth))
	}
	if cfg.Chrome.BorderWidth >= cfg.Chrome.CaptionHeight {
		errs = append(errs, fmt.Errorf("chrome.border_width (%d) must be smaller than chrome.caption_height (%d)",
			cfg.Chrome.BorderWidth, cfg.Chrome.CaptionHeight))
	}
	if cfg.Chrome.RefreshDelayMs < 0 {
		errs = append(errs, fmt.Errorf("chrome.refresh_delay_ms must not be negative, got %d", cfg.Chrome.RefreshDelayMs))
	}

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
