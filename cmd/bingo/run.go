// cmd/bingo/run.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jason-s-yu/bingo/internal/bingo"
	"github.com/jason-s-yu/bingo/internal/config"
	"github.com/jason-s-yu/bingo/internal/input"
	"github.com/jason-s-yu/bingo/internal/logging"
	"github.com/sirupsen/logrus"
)

// Run loads the configured input, plays the match and writes the score to out.
// Logs go to errOut.
func Run(ctx context.Context, cfg config.Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	logger, err := logging.New(cfg.LogLevel, errOut)
	if err != nil {
		return err
	}
	policy, err := cfg.PlayPolicy()
	if err != nil {
		return err
	}

	path := cfg.InputPath()
	inputLog := logging.Topic(logger, "input").WithField("path", path)
	lines, err := input.LoadFile(path)
	if err != nil {
		return err
	}
	draws, cards, err := input.ParseBingo(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	inputLog.WithFields(logrus.Fields{
		"draws": len(draws),
		"cards": len(cards),
	}).Info("loaded bingo input")

	if err := ctx.Err(); err != nil {
		return err
	}

	driver := bingo.NewDriver(logging.Topic(logger, "match"), cfg.LastWinnerRule())
	res, ok := driver.Play(bingo.NewMatch(cards), draws, policy)
	if !ok {
		logger.WithField("policy", policy).Info("match finished without a winner")
	}

	if cfg.OutputJSON {
		_, err = out.Write(append(encodeResult(logger, res, ok), '\n'))
		return err
	}
	if !ok {
		_, err = fmt.Fprintln(out, "no winner")
		return err
	}
	_, err = fmt.Fprintf(out, "score: %d (unmarked: %d, last drawn: %d)\n", res.Score, res.UnmarkedSum, res.LastDrawn)
	return err
}

// encodeResult marshals the match outcome. "null" stands for no winner.
// On a marshalling error it logs a warning and returns "{}".
func encodeResult(logger logrus.FieldLogger, res bingo.Result, ok bool) []byte {
	if !ok {
		return []byte("null")
	}
	data, err := json.Marshal(res)
	if err != nil {
		logger.Warnf("failed to marshal result for card %d: %v", res.CardIndex, err)
		return []byte("{}")
	}
	return data
}
