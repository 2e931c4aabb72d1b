package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"swstats/internal/config"
	"swstats/internal/logging"
	"swstats/internal/render"
	"swstats/internal/swapi"
)

type commandContext struct {
	configFlag   *string
	inputDirFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, inputDirFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		inputDirFlag: inputDirFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.inputDirFlag != nil && strings.TrimSpace(*c.inputDirFlag) != "" {
			dir, err := config.ExpandPath(strings.TrimSpace(*c.inputDirFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve --input-dir: %w", err)
				return
			}
			cfg.SWAPI.InputDir = dir
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// runContext stamps a fresh run correlation ID on the command's context and
// returns a logger carrying it.
func (c *commandContext) runContext(cmd *cobra.Command, name string) (context.Context, *slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.NewString())
	return ctx, logging.WithContext(ctx, logging.NewComponentLogger(logger, name)), nil
}

func (c *commandContext) source(logger *slog.Logger) (swapi.Source, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Offline() {
		logger.Debug("reading snapshot", logging.String("dir", cfg.SWAPI.InputDir))
		return swapi.NewFileSource(cfg.SWAPI.InputDir)
	}
	return swapi.New(cfg.SWAPI.BaseURL,
		swapi.WithTimeout(cfg.RequestTimeout()),
		swapi.WithPageLimit(cfg.SWAPI.PageLimit),
		swapi.WithLogger(logger),
	)
}

// outputFormat resolves the --format flag, falling back to report.format.
func (c *commandContext) outputFormat(flagValue string) (render.Format, error) {
	if strings.TrimSpace(flagValue) != "" {
		return render.ParseFormat(flagValue)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return render.ParseFormat(cfg.Report.Format)
}

func (c *commandContext) chartOptions(w io.Writer, title string) render.ChartOptions {
	opts := render.ChartOptions{Title: title}
	cfg, err := c.ensureConfig()
	if err != nil {
		return opts
	}
	opts.Width = cfg.Report.ChartWidth
	switch cfg.Report.Color {
	case "always":
		opts.Color = true
	case "never":
		opts.Color = false
	default:
		opts.Color = shouldColorize(w)
	}
	return opts
}

func (c *commandContext) minGroupSize(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return 1
	}
	return cfg.Report.MinGroupSize
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
