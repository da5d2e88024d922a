// Package controller validates user input, runs one download at a time through
// a download.Engine and reports progress and outcome to a View.
package controller
