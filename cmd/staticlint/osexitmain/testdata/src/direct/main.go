package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("too many arguments: %d", len(os.Args)) // want `log.Fatalf called directly in main; return an exit code from run instead`
	}
	defer func() {
		os.Exit(4)
	}()
	os.Exit(run()) // want `os.Exit called directly in main; return an exit code from run instead`
}

func run() int {
	os.Exit(1)
	return 0
}
