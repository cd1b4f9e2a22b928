// Package main is the entry point for the pipupgrade CLI application.
//
// pipupgrade upgrades every outdated package of one or more pip executables.
// All command parsing and execution lives in the cmd package.
package main

import "github.com/ajxudir/pipupgrade/cmd"

func main() {
	cmd.Execute()
}
