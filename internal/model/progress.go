package model

// ProgressEvent is a single progress notification emitted by a download engine.
// PercentString mirrors yt-dlp's "_percent_str" field (e.g. " 45.5%") and is
// only meaningful while Status is ProgressDownloading.
type ProgressEvent struct {
	Status          ProgressStatus
	PercentString   string
	DownloadedBytes int64
	TotalBytes      int64
	Filename        string
}
