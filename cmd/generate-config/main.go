package main

import (
	"gopkg.in/yaml.v2"
	"holdem-evaluator/internal/config"
	"os"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
