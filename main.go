// Package main is the entry point for the snookerstats CLI tool, which loads
// a historical snooker results dataset and computes player/tournament statistics.
package main

import "github.com/pable/go-snooker-metrics/cmd"

func main() {
	cmd.Execute()
}
