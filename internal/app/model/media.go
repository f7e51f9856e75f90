package model

import (
	"path/filepath"
	"strings"
)

// MediaKind classifies a directory entry by its file extension.
type MediaKind int

const (
	KindUnsupported MediaKind = iota
	KindAudio
	KindVideo
)

func (k MediaKind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unsupported"
	}
}

// MediaFile is a supported media file discovered in the input directory.
type MediaFile struct {
	FullPath string
	Name     string
	Kind     MediaKind
}

// Stem returns the file name without its extension, used to derive the
// transcript file name.
func (f MediaFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}
