package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"
)

const (
	LevelFlagName  = "log.level"
	FormatFlagName = "log.format"
	ColorFlagName  = "log.color"
)

// FormatType is the output format of the logger.
type FormatType string

const (
	FormatText     FormatType = "text"
	FormatTerminal FormatType = "terminal"
	FormatLogFmt   FormatType = "logfmt"
	FormatJSON     FormatType = "json"
)

var formats = []FormatType{FormatText, FormatTerminal, FormatLogFmt, FormatJSON}

func (f FormatType) String() string {
	return string(f)
}

// ParseFormat returns the FormatType for the given name.
func ParseFormat(name string) (FormatType, error) {
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unrecognized log format: %q", name)
}

var levels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

// ParseLevel parses a log level name, case-insensitively.
func ParseLevel(name string) (slog.Level, error) {
	lvl, ok := levels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unrecognized log level: %q", name)
	}
	return lvl, nil
}

// CLIFlags returns the log flags, with env vars under the given prefix.
func CLIFlags(envPrefix string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     LevelFlagName,
			Usage:    "The lowest log level that will be output",
			Value:    "info",
			EnvVars:  []string{envPrefix + "_LOG_LEVEL"},
			Category: "Logging",
		},
		&cli.StringFlag{
			Name:     FormatFlagName,
			Usage:    "Format the log output. Supported formats: 'text', 'terminal', 'logfmt', 'json'",
			Value:    FormatText.String(),
			EnvVars:  []string{envPrefix + "_LOG_FORMAT"},
			Category: "Logging",
		},
		&cli.BoolFlag{
			Name:     ColorFlagName,
			Usage:    "Color the log output if in terminal mode",
			EnvVars:  []string{envPrefix + "_LOG_COLOR"},
			Category: "Logging",
		},
	}
}

type CLIConfig struct {
	Level  slog.Level
	Color  bool
	Format FormatType
}

// DefaultCLIConfig writes colored text to a terminal at info level.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Level:  log.LevelInfo,
		Format: FormatText,
		Color:  isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// ReadCLIConfig reads the log flags. Invalid values fall back to the
// defaults; Check on the parent config reports them.
func ReadCLIConfig(ctx *cli.Context) CLIConfig {
	cfg := DefaultCLIConfig()
	if lvl, err := ParseLevel(ctx.String(LevelFlagName)); err == nil {
		cfg.Level = lvl
	}
	if f, err := ParseFormat(ctx.String(FormatFlagName)); err == nil {
		cfg.Format = f
	}
	if ctx.IsSet(ColorFlagName) {
		cfg.Color = ctx.Bool(ColorFlagName)
	}
	return cfg
}

// CheckCLIFlags reports invalid log flag values.
func CheckCLIFlags(ctx *cli.Context) error {
	if _, err := ParseLevel(ctx.String(LevelFlagName)); err != nil {
		return err
	}
	if _, err := ParseFormat(ctx.String(FormatFlagName)); err != nil {
		return err
	}
	return nil
}

// NewLogger creates a logger writing to wr in the configured format.
func NewLogger(wr io.Writer, cfg CLIConfig) log.Logger {
	return log.NewLogger(NewHandler(wr, cfg))
}

func NewHandler(wr io.Writer, cfg CLIConfig) slog.Handler {
	switch cfg.Format {
	case FormatJSON:
		return JSONMsHandlerWithLevel(wr, cfg.Level)
	case FormatLogFmt:
		return LogfmtMsHandlerWithLevel(wr, cfg.Level)
	case FormatTerminal:
		return log.NewTerminalHandlerWithLevel(wr, cfg.Level, cfg.Color)
	default:
		return log.NewTerminalHandlerWithLevel(wr, cfg.Level, cfg.Color && isatty.IsTerminal(os.Stdout.Fd()))
	}
}

// SetupDefaults installs a terminal logger as the global default, until the
// CLI flags have been read.
func SetupDefaults() {
	log.SetDefault(NewLogger(os.Stdout, DefaultCLIConfig()))
}

// AppOut returns the writer that the app logs to.
func AppOut(ctx *cli.Context) io.Writer {
	if ctx.App.Writer != nil {
		return ctx.App.Writer
	}
	return os.Stdout
}
