package main

import (
	"os"

	"github.com/tlogic-co/pqrs-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
