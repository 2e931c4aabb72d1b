package config

const (
	defaultConfigPath     = "~/.config/swstats/config.toml"
	projectConfigName     = "swstats.toml"
	defaultSWAPIBaseURL   = "https://swapi.dev/api"
	defaultSWAPITimeout   = 10
	defaultSWAPIPageLimit = 50
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultReportFormat   = "table"
	defaultMinGroupSize   = 2
	defaultColorMode      = "auto"
	defaultChartWidth     = 40
)

// Report formats accepted in report.format.
var reportFormats = []string{"table", "csv", "json", "yaml"}

// Colour modes accepted in report.color.
var colorModes = []string{"auto", "always", "never"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SWAPI: SWAPI{
			BaseURL:        defaultSWAPIBaseURL,
			TimeoutSeconds: defaultSWAPITimeout,
			PageLimit:      defaultSWAPIPageLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			Format:       defaultReportFormat,
			MinGroupSize: defaultMinGroupSize,
			Color:        defaultColorMode,
			ChartWidth:   defaultChartWidth,
		},
	}
}
