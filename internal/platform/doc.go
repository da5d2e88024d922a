// Package platform contains OS and filesystem glue: locating the application
// directory, creating directories, per-download scratch directories and
// playlist link inspection.
package platform
