// Package ui contains the Fyne desktop window: a single link tab with video
// and audio triggers, a playlist tab, a shared progress bar and a status line.
// RootUI implements controller.View; all widget updates go through fyne.Do.
package ui
