// internal/config/config.go
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/jason-s-yu/bingo/internal/bingo"
)

// Config holds the bingo command configuration. Environment variables are
// read first and command line flags override them.
type Config struct {
	InputFile     string `env:"BINGO_INPUT_FILE"        envDefault:"./input.txt"`
	TestInputFile string `env:"BINGO_TEST_INPUT_FILE"   envDefault:"./input_test.txt"`
	UseTestInput  bool   `env:"BINGO_USE_TEST_INPUT"`
	Policy        string `env:"BINGO_POLICY"            envDefault:"first"`
	ExactLastWin  bool   `env:"BINGO_EXACT_LAST_WINNER"`
	LogLevel      string `env:"BINGO_LOG_LEVEL"         envDefault:"info"`
	OutputJSON    bool   `env:"BINGO_OUTPUT_JSON"`
}

// ParseConfig reads the environment and then parses args with fs.
// A positional "test" argument selects the test input, like -test.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.InputFile, "input", cfg.InputFile, "path to the puzzle input")
	fs.StringVar(&cfg.TestInputFile, "test-input", cfg.TestInputFile, "path to the trimmed test input")
	fs.BoolVar(&cfg.UseTestInput, "test", cfg.UseTestInput, "read the test input instead of the puzzle input")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "winner policy: first or last")
	fs.BoolVar(&cfg.ExactLastWin, "exact", cfg.ExactLastWin, "last winner must have exactly one completed line")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.OutputJSON, "json", cfg.OutputJSON, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.Arg(0) == "test" {
		cfg.UseTestInput = true
	}
	if _, err := cfg.PlayPolicy(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InputPath returns the file to read, depending on UseTestInput.
func (c Config) InputPath() string {
	if c.UseTestInput {
		return c.TestInputFile
	}
	return c.InputFile
}

// PlayPolicy parses the configured winner policy.
func (c Config) PlayPolicy() (bingo.Policy, error) {
	return bingo.ParsePolicy(c.Policy)
}

// LastWinnerRule maps ExactLastWin onto the driver rule.
func (c Config) LastWinnerRule() bingo.LastWinnerRule {
	if c.ExactLastWin {
		return bingo.RuleExactlyOneLine
	}
	return bingo.RuleFirstLine
}
