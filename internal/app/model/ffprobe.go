package model

// FFProbeOutput maps the JSON emitted by
// `ffprobe -print_format json -show_format`.
type FFProbeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}
