// Package main is the entry point for the azvmlab CLI.
//
// azvmlab is a demonstration tool that provisions a small Azure
// environment (a resource group, a virtual network with two subnets,
// network interfaces, managed disks, and two virtual machines), exercises
// update, enumeration, and delete operations against it, and then tears
// the whole environment down again.
//
// For detailed usage information, run:
//
//	azvmlab --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/azvmlab/cmd/azvmlab/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
