// Package main provides the CLI entry point for fromenvdemo, a tool that
// decodes the real process environment against a schema exercising every
// kind fromenv supports and prints the result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arnegrim/fromenv"
)

// logConfig mirrors the --log-level/--log-format flag pair gandaldf-sqlr's
// pack sibling MacroPower-x/log wires onto a pflag.FlagSet.
type logConfig struct {
	Level  string
	Format string
}

func (c *logConfig) registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&c.Format, "log-format", "logfmt", "log output format (logfmt, json)")
}

func (c *logConfig) handler(w *os.File) (slog.Handler, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt", "":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// demoConfig is the schema the command decodes the process environment
// against. It is deliberately built to exercise every fromenv kind: plain
// scalars, a boolean, a nested record, an optional scalar, a homogeneous
// list, an any-length tuple, a fixed tuple, a union and a custom parser.
type demoConfig struct {
	Host    string `fromenv:"HOST" envDefault:"\"localhost\""`
	Port    int    `fromenv:"PORT" envDefault:"8080"`
	Debug   bool   `fromenv:"DEBUG" envDefault:"false"`
	Nested  demoDatabase
	Timeout fromenv.Optional[int]                           `fromenv:"TIMEOUT"`
	Peers   []string                                        `fromenv:"PEERS"`
	Weights fromenv.VarTuple[float64]                       `fromenv:"WEIGHTS"`
	Tags    demoTags                                        `fromenv:"TAGS" envDefault:"[]"`
	Bind    fromenv.Tuple2[string, int]                      `envDefault:"[\"0.0.0.0\",9090]"`
	Backend fromenv.Union2[demoTCPBackend, demoUnixBackend] `envDefault:"{\"A\":{\"Addr\":\"127.0.0.1:9090\"},\"Index\":1}"`
}

type demoDatabase struct {
	Host string `envDefault:"\"localhost\""`
	Port int    `envDefault:"5432"`
}

type demoTCPBackend struct {
	Addr string
}

type demoUnixBackend struct {
	Socket string
}

// demoTags is a custom leaf type: a comma-separated list parsed through
// fromenv.Unmarshaler instead of being treated as a homogeneous sequence.
type demoTags []string

func (t *demoTags) UnmarshalEnv(raw string) error {
	if raw == "" {
		*t = demoTags{}
		return nil
	}
	*t = strings.Split(raw, ",")
	return nil
}

func environToMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}

func main() {
	logCfg := &logConfig{}
	var prefix, sep string

	rootCmd := &cobra.Command{
		Use:           "fromenvdemo",
		Short:         "Decode the process environment against a demo schema",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(logCfg, prefix, sep)
		},
	}

	logCfg.registerFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "variable key prefix")
	rootCmd.Flags().StringVar(&sep, "sep", "_", "variable key component separator")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logCfg *logConfig, prefix, sep string) error {
	handler, err := logCfg.handler(os.Stderr)
	if err != nil {
		return err
	}
	logger := slog.New(handler)

	input := environToMap(os.Environ())
	logger.Debug("decoding process environment", "variables", len(input))

	cfg, err := fromenv.Decode[demoConfig](input, fromenv.Config{Prefix: prefix, Sep: sep})
	if err != nil {
		logger.Error("decode failed", "error", err)
		return err
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
