package main

import "os"

var osExit = os.Exit

func main() {
	osExit(run())
}

func run() int { return 2 }
