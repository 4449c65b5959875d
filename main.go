package main

import (
	"os"

	"github.com/hanjihoon73/lawquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
