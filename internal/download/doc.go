// Package download assembles per-mode download options and hands them to an
// Engine. The default engine drives yt-dlp through github.com/lrstanley/go-ytdlp
// and relays its progress updates as model.ProgressEvent values.
package download
