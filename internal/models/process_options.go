package models

// DownloadMode selects what part of the media the instance should return
type DownloadMode string

const (
	DownloadModeAuto  DownloadMode = "auto"
	DownloadModeAudio DownloadMode = "audio"
	DownloadModeMute  DownloadMode = "mute"
)

// FilenameStyle controls how the instance names the returned file
type FilenameStyle string

const (
	FilenameStyleClassic FilenameStyle = "classic"
	FilenameStylePretty  FilenameStyle = "pretty"
	FilenameStyleBasic   FilenameStyle = "basic"
	FilenameStyleNerdy   FilenameStyle = "nerdy"
)

// AudioFormat is the audio container/codec requested from the instance
type AudioFormat string

const (
	AudioFormatBest AudioFormat = "best"
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatOgg  AudioFormat = "ogg"
	AudioFormatWav  AudioFormat = "wav"
	AudioFormatOpus AudioFormat = "opus"
)

// VideoCodec is the preferred codec for YouTube video downloads
type VideoCodec string

const (
	VideoCodecH264 VideoCodec = "h264"
	VideoCodecAV1  VideoCodec = "av1"
	VideoCodecVP9  VideoCodec = "vp9"
)

// ProcessOptions configures a process request. The zero value means "let the
// instance decide": unset fields are omitted from the request body entirely,
// never sent as null or empty strings.
//
// Boolean toggles default to false on the instance side, so the zero value
// and an explicit false are equivalent and both omitted.
type ProcessOptions struct {
	VideoQuality      string        `json:"videoQuality,omitempty"` // "144" .. "2160", "max"
	AudioFormat       AudioFormat   `json:"audioFormat,omitempty"`
	AudioBitrate      string        `json:"audioBitrate,omitempty"` // "8" .. "320" (kbps)
	FilenameStyle     FilenameStyle `json:"filenameStyle,omitempty"`
	DownloadMode      DownloadMode  `json:"downloadMode,omitempty"`
	YoutubeVideoCodec VideoCodec    `json:"youtubeVideoCodec,omitempty"`
	YoutubeDubLang    string        `json:"youtubeDubLang,omitempty"` // ISO 639-1 language code
	AlwaysProxy       bool          `json:"alwaysProxy,omitempty"`
	DisableMetadata   bool          `json:"disableMetadata,omitempty"`
	TiktokFullAudio   bool          `json:"tiktokFullAudio,omitempty"`
	TiktokH265        bool          `json:"tiktokH265,omitempty"`
	TwitterGif        bool          `json:"twitterGif,omitempty"`
	YoutubeHLS        bool          `json:"youtubeHls,omitempty"`
}
