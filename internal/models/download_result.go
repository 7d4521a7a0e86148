package models

// DownloadResult represents fetched media ready to be persisted
type DownloadResult struct {
	Filename string // Name of the media file as reported by the instance
	Data     []byte // Raw media payload
}
