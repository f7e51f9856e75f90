package model

// MediaChunk is one time-bounded slice of a source's audio track, encoded as
// an independent artifact for submission to the transcription service. The
// artifact at Path is deleted right after its transcription attempt.
type MediaChunk struct {
	Source string
	Index  int
	Start  float64 // seconds from the beginning of the track
	End    float64 // seconds, exclusive
	Size   int64   // encoded artifact size in bytes
	Path   string  // temporary artifact location
}

// Duration returns the chunk's length in seconds.
func (c MediaChunk) Duration() float64 {
	return c.End - c.Start
}
