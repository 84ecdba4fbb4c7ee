package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"mondaynightpoker-handeval/pkg/deck"
	"mondaynightpoker-handeval/pkg/handrank"
)

// ErrHandsFailed is returned when at least one hand could not be evaluated
var ErrHandsFailed = errors.New("one or more hands could not be evaluated")

type outputFormat int

const (
	formatPlain outputFormat = iota
	formatJSON
	formatTable
)

type cli struct {
	evaluator *handrank.Evaluator
	wild      bool
	format    outputFormat
	out       io.Writer
}

type result struct {
	Hand   []string `json:"hand"`
	Best   []string `json:"best,omitempty"`
	Rank   string   `json:"rank,omitempty"`
	Values []int    `json:"values,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// run evaluates every hand in args, or every non-empty line of stdin if there are no args
func (c *cli) run(args []string, stdin io.Reader) error {
	hands := args
	if len(hands) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				hands = append(hands, line)
			}
		}

		if err := scanner.Err(); err != nil {
			return err
		}
	}

	results := make([]result, len(hands))
	failed := false
	for i, h := range hands {
		results[i] = c.evaluate(h)
		if results[i].Error != "" {
			failed = true
		}
	}

	if err := c.write(results); err != nil {
		return err
	}

	if failed {
		return ErrHandsFailed
	}

	return nil
}

// parseHand splits the hand without validating the cards
func parseHand(s string) deck.Hand {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	hand := make(deck.Hand, len(fields))
	for i, f := range fields {
		hand[i] = deck.Card(strings.ToUpper(f))
	}

	return hand
}

func (c *cli) evaluate(s string) result {
	hand := parseHand(s)
	res := result{Hand: toStrings(hand)}

	// strict mode rejects anything that is not a real card or joker up front
	if c.evaluator.Policy() == handrank.StrictRanks {
		var err error
		if hand, err = deck.CardsFromString(s); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	var best deck.Hand
	var err error
	if c.wild {
		best, err = c.evaluator.BestWildHand(hand)
	} else {
		best, err = c.evaluator.BestHand(hand)
	}

	if err != nil {
		res.Error = err.Error()
		return res
	}

	rank, err := c.evaluator.HandRank(best)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Best = toStrings(best.Sorted())
	res.Rank = rank.String()
	res.Values = rank.Values
	return res
}

func (c *cli) write(results []result) error {
	switch c.format {
	case formatJSON:
		enc := json.NewEncoder(c.out)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return err
			}
		}

		return nil
	case formatTable:
		data := pterm.TableData{{"Hand", "Best", "Rank"}}
		for _, res := range results {
			if res.Error != "" {
				data = append(data, []string{strings.Join(res.Hand, " "), "", pterm.LightRed(res.Error)})
				continue
			}

			data = append(data, []string{strings.Join(res.Hand, " "), prettyCards(res.Best), pterm.LightGreen(res.Rank)})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.out, table)
		return err
	default:
		for _, res := range results {
			var err error
			if res.Error != "" {
				_, err = fmt.Fprintf(c.out, "%s: error: %s\n", strings.Join(res.Hand, " "), res.Error)
			} else {
				_, err = fmt.Fprintf(c.out, "%s: %s (%s)\n", strings.Join(res.Hand, " "), strings.Join(res.Best, " "), res.Rank)
			}

			if err != nil {
				return err
			}
		}

		return nil
	}
}

func prettyCards(cards []string) string {
	pretty := make([]string, len(cards))
	for i, c := range cards {
		pretty[i] = deck.Card(c).Pretty()
	}

	return strings.Join(pretty, " ")
}

func toStrings(hand deck.Hand) []string {
	s := make([]string, len(hand))
	for i, c := range hand {
		s[i] = c.String()
	}

	return s
}
