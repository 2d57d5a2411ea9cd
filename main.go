package main

import (
	"fmt"
	"os"

	"github.com/bnema/tabletray/cmd"
	"github.com/bnema/tabletray/internal/logger"
)

func main() {
	err := cmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
