// internal/bingo/driver.go
package bingo

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Policy selects which card is scored at the end of a match.
type Policy string

const (
	PolicyFirstWinner Policy = "first" // stop at the first draw producing a winner
	PolicyLastWinner  Policy = "last"  // play every draw, score the last card to win
)

func (p Policy) String() string {
	return string(p)
}

// ParsePolicy converts a config or flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyFirstWinner:
		return PolicyFirstWinner, nil
	case PolicyLastWinner:
		return PolicyLastWinner, nil
	}
	return "", fmt.Errorf("unknown policy %q (want %q or %q)", s, PolicyFirstWinner, PolicyLastWinner)
}

// LastWinnerRule decides when a card counts as having just won under PolicyLastWinner.
type LastWinnerRule int

const (
	// RuleFirstLine: the card went from zero completed lines to at least one.
	RuleFirstLine LastWinnerRule = iota
	// RuleExactlyOneLine: the card has exactly one completed line right after the draw.
	// A card completing a row and a column on the same draw is skipped.
	RuleExactlyOneLine
)

// Result describes the scored card of a finished match.
type Result struct {
	Policy      Policy    `json:"policy"`
	CardIndex   int       `json:"card_index"`
	CardID      uuid.UUID `json:"card_id"`
	Card        *Card     `json:"card"` // snapshot taken when the card won
	LastDrawn   int       `json:"last_drawn"`
	UnmarkedSum int       `json:"unmarked_sum"`
	Score       int       `json:"score"`
	Draws       int       `json:"draws"` // number of draws consumed
}

// Driver feeds a draw sequence into a Match and picks the scored card.
type Driver struct {
	Log  logrus.FieldLogger
	Rule LastWinnerRule
}

// NewDriver returns a Driver logging to log. A nil log discards output.
func NewDriver(log logrus.FieldLogger, rule LastWinnerRule) *Driver {
	if log == nil {
		log = discardLogger()
	}
	return &Driver{Log: log, Rule: rule}
}

// Play runs draws against match under policy. The bool is false when no card
// ever won, which includes an empty draw sequence.
func (d *Driver) Play(match *Match, draws []int, policy Policy) (Result, bool) {
	switch policy {
	case PolicyFirstWinner:
		return d.playFirst(match, draws)
	case PolicyLastWinner:
		return d.playLast(match, draws)
	}
	d.logger().WithField("policy", policy).Warn("unknown policy, no winner")
	return Result{}, false
}

func (d *Driver) playFirst(match *Match, draws []int) (Result, bool) {
	for i, n := range draws {
		winners := match.Mark(n)
		if len(winners) == 0 {
			continue
		}
		card, _ := match.Card(winners[0])
		if len(winners) > 1 {
			d.logger().WithFields(logrus.Fields{
				"draw":    n,
				"winners": winners,
			}).Debug("simultaneous winners, lowest index wins")
		}
		res := newResult(PolicyFirstWinner, winners[0], card.Clone(), n, i+1)
		d.logWinner(res, card.CountCompletedLines())
		return res, true
	}
	return Result{}, false
}

func (d *Driver) playLast(match *Match, draws []int) (Result, bool) {
	var (
		last  Result
		found bool
		won   = make([]bool, match.Len())
	)

	for i, n := range draws {
		for _, idx := range match.Mark(n) {
			card, _ := match.Card(idx)
			lines := card.CountCompletedLines()

			justWon := !won[idx]
			if d.Rule == RuleExactlyOneLine {
				justWon = lines == 1
			}
			won[idx] = true
			if !justWon {
				continue
			}

			last = newResult(PolicyLastWinner, idx, card.Clone(), n, i+1)
			found = true
			d.logWinner(last, lines)
		}
	}

	if found {
		last.Draws = len(draws)
	}
	return last, found
}

func newResult(policy Policy, idx int, snapshot *Card, drawn, draws int) Result {
	unmarked := snapshot.SumUnmarked()
	return Result{
		Policy:      policy,
		CardIndex:   idx,
		CardID:      snapshot.ID,
		Card:        snapshot,
		LastDrawn:   drawn,
		UnmarkedSum: unmarked,
		Score:       unmarked * drawn,
		Draws:       draws,
	}
}

func (d *Driver) logWinner(res Result, lines int) {
	log := d.logger().WithFields(logrus.Fields{
		"policy":          res.Policy,
		"card_index":      res.CardIndex,
		"card_id":         res.CardID,
		"draw":            res.LastDrawn,
		"completed_lines": lines,
		"unmarked":        res.UnmarkedSum,
	})
	log.Debug("card won")
	log.Tracef("winning card:\n%s", res.Card)
}

// logger covers a Driver built as a struct literal without a Log.
func (d *Driver) logger() logrus.FieldLogger {
	if d.Log == nil {
		d.Log = discardLogger()
	}
	return d.Log
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
