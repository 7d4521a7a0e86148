package models

// Process response status values returned by cobalt instances
const (
	StatusTunnel   = "tunnel"
	StatusRedirect = "redirect"
	StatusPicker   = "picker"
	StatusError    = "error"
)

// TunnelRedirect is a process response that resolves to a single media URL.
// Tunnel and redirect responses share the same shape; the status field tells
// whether the instance proxies the media or points at the source directly.
type TunnelRedirect struct {
	Status   string `json:"status"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// PickerItem is one selectable media variant in a picker response
type PickerItem struct {
	Type  string `json:"type"` // "video", "photo" or "gif"
	URL   string `json:"url"`
	Thumb string `json:"thumb"`
}

// Picker is a process response offering multiple selectable variants for the
// same source URL, plus a shared background audio track.
type Picker struct {
	Status        string       `json:"status"`
	Audio         string       `json:"audio"`
	AudioFilename string       `json:"audioFilename"`
	Items         []PickerItem `json:"picker"`
}

// ProcessResult is the classified outcome of a process call. Exactly one of
// TunnelRedirect or Picker is non-nil, matching Status.
type ProcessResult struct {
	Status         string
	TunnelRedirect *TunnelRedirect
	Picker         *Picker
}

// IsPicker reports whether the result carries selectable variants
func (r *ProcessResult) IsPicker() bool {
	return r.Picker != nil
}
