package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"mondaynightpoker-handeval/internal/config"
	"mondaynightpoker-handeval/pkg/handrank"
)

var (
	wild     = flag.Bool("wild", false, "allow ?B and ?R jokers")
	strict   = flag.Bool("strict", false, "reject cards with an unknown rank")
	jsonOut  = flag.Bool("json", false, "print one JSON object per hand")
	logLevel = flag.String("log-level", "", "overrides the configured log level")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [hand ...]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), `Each hand is a quoted list of cards, i.e., "TD TC 5H 5C 7C ?R ?B".`)
		fmt.Fprintln(flag.CommandLine.Output(), "Hands are read from stdin, one per line, when none are given.")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Instance()
	setupLogger(cfg)

	policy := cfg.Policy()
	if *strict {
		policy = handrank.StrictRanks
	}

	format := formatPlain
	if *jsonOut {
		format = formatJSON
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		format = formatTable
	}

	c := &cli{
		evaluator: handrank.New(
			handrank.WithRankPolicy(policy),
			handrank.WithLogger(logrus.StandardLogger()),
		),
		wild:   *wild,
		format: format,
		out:    os.Stdout,
	}

	if err := c.run(flag.Args(), os.Stdin); err != nil {
		logrus.WithError(err).Error("could not evaluate hands")
		os.Exit(1)
	}
}

func setupLogger(cfg config.Config) {
	lvl := cfg.Log.Level
	if *logLevel != "" {
		lvl = *logLevel
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
