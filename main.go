package main

import (
	"os"

	"github.com/Efficient-Computing-Lab/CADO/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
