// Package display renders pipupgrade's user-facing output.
//
// Progress lines go to stdout and error lines to stderr through a Printer:
//
//	p := display.NewPrinter(os.Stdout, os.Stderr)
//	p.Header("pip3")           // --- Upgrading all packages for 'pip3' ---
//	p.Count(2)                 // 2 package(s) need to be upgraded
//	p.Error(err)               // message only, red when colour is enabled
//
// The outdated report is a table built with pkg/output.
package display
