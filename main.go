package main

import (
	"os"

	"github.com/sixlettervariables/hrm-grammar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
