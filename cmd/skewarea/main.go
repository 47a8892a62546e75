// Package main starts the SkewArea server.
package main

import "flag"

// main is the entrypoint for the SkewArea server.
func main() {
	debug := flag.Bool("debug", false, "Log every data channel payload")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
