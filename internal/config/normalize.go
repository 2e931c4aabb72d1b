package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSWAPI(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeReport()
	return nil
}

func (c *Config) normalizeSWAPI() error {
	if value, ok := os.LookupEnv("SWAPI_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.SWAPI.BaseURL = value
	}
	c.SWAPI.BaseURL = strings.TrimRight(strings.TrimSpace(c.SWAPI.BaseURL), "/")
	if c.SWAPI.BaseURL == "" {
		c.SWAPI.BaseURL = defaultSWAPIBaseURL
	}

	if strings.TrimSpace(c.SWAPI.InputDir) == "" {
		c.SWAPI.InputDir = ""
		return nil
	}
	var err error
	if c.SWAPI.InputDir, err = expandPath(strings.TrimSpace(c.SWAPI.InputDir)); err != nil {
		return fmt.Errorf("swapi.input_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("SWSTATS_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultColorMode
	}
	if c.Report.ChartWidth == 0 {
		c.Report.ChartWidth = defaultChartWidth
	}
}
