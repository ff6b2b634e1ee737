package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/orgcount/internal/clock"
	"github.com/danieljhkim/orgcount/internal/config"
	"github.com/danieljhkim/orgcount/internal/engine"
	"github.com/danieljhkim/orgcount/internal/logging"
	"github.com/danieljhkim/orgcount/internal/registry"
	"github.com/danieljhkim/orgcount/internal/seed"
)

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.SeedFile = seedFile
		cfg.NoSeed = false
	}
	if flags.Changed("no-seed") {
		cfg.NoSeed = noSeed
		if noSeed {
			cfg.SeedFile = ""
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine creates an engine seeded according to the configuration. The
// returned context carries the logger entry for this command.
func newEngine(cmd *cobra.Command) (context.Context, *engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.New(cfg, cmd.ErrOrStderr())
	eng := engine.New(registry.NewMemoryRegistry(), clock.System{}, logger)
	ctx := commandContext(cmd, logger)

	doc, err := loadSeed(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if doc != nil {
		if err := eng.ApplySeed(ctx, doc); err != nil {
			return nil, nil, nil, err
		}
	}
	return ctx, eng, cfg, nil
}

// loadSeed returns the seed document to apply, or nil for an empty start.
func loadSeed(cfg *config.Config) (*seed.Document, error) {
	switch {
	case cfg.NoSeed:
		return nil, nil
	case cfg.SeedFile != "":
		return seed.Load(cfg.SeedFile)
	default:
		return seed.Default()
	}
}

// commandContext returns the command's context, or a background context when
// it was executed without one, with a logger entry naming the command.
func commandContext(cmd *cobra.Command, logger *logrus.Logger) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logger.WithField("cli", cmd.Name()))
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorPayload is the JSON shape of a failed command.
type errorPayload struct {
	Line  string `json:"line,omitempty"`
	Error string `json:"error"`
}

// writeOutcome prints the result of one executed line. In JSON mode both
// outcomes and errors are written to out as single JSON documents.
func writeOutcome(out, errOut io.Writer, line string, outcome *engine.Outcome, err error) {
	if jsonOutput {
		if err != nil {
			_ = outputJSON(out, errorPayload{Line: line, Error: engine.UserMessage(err)})
			return
		}
		_ = outputJSON(out, outcome)
		return
	}

	if err != nil {
		PrintError(errOut, engine.UserMessage(err))
		return
	}
	if outcome.Relation != nil {
		PrintRelation(out, outcome.Relation.Relation)
		return
	}
	PrintInfo(out, engine.FormatOutcome(outcome))
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// UserMessage returns the text to show for an error returned by Execute.
func UserMessage(err error) string {
	return engine.UserMessage(err)
}
