package main

import (
	"os"

	"github.com/trovehq/trove/troveservice"
)

func main() {
	if err := troveservice.Run(); err != nil {
		os.Exit(1)
	}
}
