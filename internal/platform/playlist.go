package platform

import (
	"fmt"
	"strings"
)

// URL parameters
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
)

// IsPlaylistURL reports whether the link carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistURLParam)
}

// ExtractPlaylistID extracts the playlist ID from a playlist link.
// Supported forms:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) (string, error) {
	if !IsPlaylistURL(url) {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}

	parts := strings.SplitN(url, PlaylistURLParam, 2)
	playlistID := parts[1]

	if idx := strings.Index(playlistID, PlaylistParamSeparator); idx >= 0 {
		playlistID = playlistID[:idx]
	}

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}

	return playlistID, nil
}
