package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// LoadIcon loads the window icon from path
func LoadIcon(path string) (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", path, err)
	}
	return res, nil
}
