package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSWAPI(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSWAPI() error {
	if c.SWAPI.TimeoutSeconds <= 0 {
		return errors.New("swapi.timeout_seconds must be positive")
	}
	if c.SWAPI.PageLimit < 0 {
		return errors.New("swapi.page_limit must not be negative")
	}
	if c.Offline() {
		return nil
	}
	parsed, err := url.Parse(c.SWAPI.BaseURL)
	if err != nil {
		return fmt.Errorf("swapi.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("swapi.base_url must be an http(s) URL, got %q", c.SWAPI.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("swapi.base_url must include a host, got %q", c.SWAPI.BaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateReport() error {
	if !slices.Contains(reportFormats, c.Report.Format) {
		return fmt.Errorf("report.format must be one of %s, got %q", strings.Join(reportFormats, ", "), c.Report.Format)
	}
	if !slices.Contains(colorModes, c.Report.Color) {
		return fmt.Errorf("report.color must be one of %s, got %q", strings.Join(colorModes, ", "), c.Report.Color)
	}
	if c.Report.MinGroupSize < 1 {
		return errors.New("report.min_group_size must be at least 1")
	}
	if c.Report.ChartWidth < 10 {
		return errors.New("report.chart_width must be at least 10")
	}
	return nil
}
