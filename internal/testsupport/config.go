package testsupport

import (
	"path/filepath"
	"testing"

	"swstats/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces an offline config whose snapshot directory is a fresh
// temp dir pre-populated with the fixture dataset.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.SWAPI.InputDir = filepath.Join(base, "snapshot")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Report.Color = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	WriteSnapshot(t, cfgVal.SWAPI.InputDir)

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBaseURL switches the config to online mode against the given API root.
func WithBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.SWAPI.InputDir = ""
		b.cfg.SWAPI.BaseURL = url
	}
}

// WithReportFormat overrides the default report format.
func WithReportFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Format = format
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
