// Package cli defines the tubegrab commands. The root command opens the
// desktop window, "get" runs one download in the terminal.
package cli
