package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/sirupsen/logrus"
	"holdem-evaluator/internal/config"
	"holdem-evaluator/internal/util"
	"holdem-evaluator/pkg/deck"
	"holdem-evaluator/pkg/poker"
	"io"
	"os"
)

var pool = flag.String("pool", "", "seven comma separated cards, i.e., 14h,13h,12h,11h,10h,2c,3d")
var vs = flag.String("vs", "", "a second pool to compare against -pool")
var fixtureFile = flag.String("f", "", "a YAML file of named pools to evaluate")
var asJSON = flag.Bool("json", false, "write JSON instead of text")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	var err error
	switch {
	case *fixtureFile != "":
		err = evaluateFixtures(os.Stdout, *fixtureFile, cfg.Workers)
	case *pool != "" && *vs != "":
		err = compare(os.Stdout, *pool, *vs)
	case *pool != "":
		err = evaluate(os.Stdout, *pool)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not evaluate")
	}
}

func parsePool(s string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	if card, ok := deck.Hand(cards).FirstDuplicate(); ok {
		return nil, fmt.Errorf("duplicate card: %s", card)
	}

	return cards, nil
}

func evaluate(w io.Writer, s string) error {
	cards, err := parsePool(s)
	if err != nil {
		return err
	}

	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(w, hand)
	}

	_, err = fmt.Fprintf(w, "%s\t%s\n", hand, deck.CardsToString(hand.Cards[:]))
	return err
}

func compare(w io.Writer, first, second string) error {
	a, err := parsePool(first)
	if err != nil {
		return err
	}

	b, err := parsePool(second)
	if err != nil {
		return err
	}

	hands, err := poker.EvaluateAll(context.Background(), [][]deck.Card{a, b}, 2)
	if err != nil {
		return err
	}

	result := poker.Compare(hands[0], hands[1])
	logrus.WithFields(logrus.Fields{
		"first":  hands[0].String(),
		"second": hands[1].String(),
	}).Debug("compared")

	if *asJSON {
		return writeJSON(w, map[string]interface{}{
			"first":  hands[0],
			"second": hands[1],
			"result": result.String(),
		})
	}

	_, err = fmt.Fprintf(w, "%s vs %s: %s\n", hands[0], hands[1], result)
	return err
}

func evaluateFixtures(w io.Writer, filename string, workers int) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fixtures, err := readFixtures(file)
	if err != nil {
		return err
	}

	results, err := runFixtures(context.Background(), fixtures, workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
			logrus.WithFields(logrus.Fields{
				"fixture": r.Name,
				"got":     r.Hand.Category.Slug(),
				"want":    r.Expect.Slug(),
			}).Warn("unexpected category")
		}
	}

	if *asJSON {
		err = writeJSON(w, results)
	} else {
		for _, r := range results {
			status := "ok"
			if !r.Passed {
				status = "FAIL"
			}

			if _, err = fmt.Fprintf(w, "%s\t%s\t%s\n", status, r.Name, r.Describe); err != nil {
				break
			}
		}
	}

	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
	}

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
