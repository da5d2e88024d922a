// Package model defines the transient data exchanged between the UI, the
// controller and the download engines: download requests, progress events and
// the controller state. Nothing here is persisted.
package model
