package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-evaluator/internal/config"
	"holdem-evaluator/internal/util"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"
)

var asJSON = flag.Bool("json", false, "write JSON instead of a table")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runID := uuid.New().String()
	log := logrus.WithField("run", runID)
	log.WithFields(logrus.Fields{
		"hands":   cfg.Hands,
		"seats":   cfg.Seats,
		"seed":    cfg.Seed,
		"workers": cfg.Workers,
	}).Info("starting simulation")

	start := time.Now()
	s, err := simulate(ctx, log, options{
		Hands:   cfg.Hands,
		Seats:   cfg.Seats,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		log.WithError(err).Fatal("simulation failed")
	}

	s.RunID = runID
	log.WithField("elapsed", time.Since(start).String()).Info("simulation finished")

	if *asJSON {
		err = writeJSON(os.Stdout, s)
	} else {
		err = writeTable(os.Stdout, s)
	}

	if err != nil {
		log.WithError(err).Fatal("could not write summary")
	}
}

func writeJSON(w io.Writer, s *summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeTable(w io.Writer, s *summary) error {
	total := s.Tables * s.Seats

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CATEGORY\tHANDS\tPCT\tWINS\n")
	for _, c := range s.Counts {
		pct := 0.0
		if total > 0 {
			pct = float64(c.Hands) * 100 / float64(total)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.3f%%\t%d\n", c.Category, c.Hands, pct, c.Wins)
	}

	fmt.Fprintf(tw, "\ntables: %d, seats: %d, splits: %d\n", s.Tables, s.Seats, s.Splits)
	return tw.Flush()
}
