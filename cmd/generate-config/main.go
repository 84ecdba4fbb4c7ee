package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"

	"mondaynightpoker-handeval/internal/config"
)

var out = flag.String("out", "", "write the configuration to a file instead of stdout")

func main() {
	flag.Parse()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		w = f
	}

	if err := yaml.NewEncoder(w).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
