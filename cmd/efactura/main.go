package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rezonia/efactura/cmd/efactura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrInvalidDocuments) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
