package image

import (
	"github.com/go-imsto/resized/base"
)

const (
	DefaultQuality Quality = 95
	MaxQuality     Quality = 100
)

// Ext2Format returns the encoder name for a filename or extension, empty if unknown
func Ext2Format(ext string) string {
	if et := base.ParseExt(ext); et != base.EtNone {
		return et.String()
	}
	return ""
}

// WriteOption ...
type WriteOption struct {
	Format  string
	Quality Quality
}
