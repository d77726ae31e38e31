package base

import (
	"strings"
)

// ImagExt ...
type ImagExt byte

const (
	EtNone ImagExt = iota
	EtGIF
	EtJPEG
	EtPNG
	EtBMP
)

func (z ImagExt) String() string {
	switch z {
	case EtGIF:
		return "gif"
	case EtJPEG:
		return "jpeg"
	case EtPNG:
		return "png"
	case EtBMP:
		return "bmp"
	}
	return "unknown"
}

// ParseExt accepts a filename, an extension with dot or a bare format name,
// in any letter case.
func ParseExt(s string) ImagExt {
	if pos := strings.LastIndex(s, "."); pos != -1 && pos < len(s) {
		s = s[pos+1:]
	}
	switch strings.ToLower(s) {
	case "gif":
		return EtGIF
	case "jpeg", "jpg":
		return EtJPEG
	case "png":
		return EtPNG
	case "bmp":
		return EtBMP
	}
	return EtNone
}

// IsImageExt reports whether ext (with the leading dot) is a recognized image extension.
func IsImageExt(ext string) bool {
	if !strings.HasPrefix(ext, ".") {
		return false
	}
	return ParseExt(ext) != EtNone
}
