package main

import "os"

// Version is set at build time via ldflags
var Version = ""

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
