package main

import (
	"fmt"
	"os"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
