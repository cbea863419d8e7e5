package main

import (
	"fmt"
	"os"
)

// Exit codes
const (
	ExitSuccess = 0 // Curve or estimate computed
	ExitError   = 2 // Bad input or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitError)
	}
}
