// Package batch runs the generate and replace passes over one flat folder.
package batch

import (
	"github.com/go-imsto/resized/config"
	cimg "github.com/go-imsto/resized/image"
	zlog "github.com/go-imsto/resized/log"
	"github.com/go-imsto/resized/naming"
)

// Option ...
type Option struct {
	Folder      string
	MinWidth    uint // generate only
	TargetWidth uint
	Quality     uint8
	Marker      string
	// AtomicReplace writes a temp file and renames it over the derived one,
	// instead of deleting the derived file first.
	AtomicReplace bool
}

// DefaultOption ...
func DefaultOption() Option {
	return Option{
		Folder:      "leftover",
		MinWidth:    800,
		TargetWidth: 300,
		Quality:     uint8(cimg.DefaultQuality),
		Marker:      naming.Marker,
	}
}

// OptionFromConfig ...
func OptionFromConfig(c *config.Config) Option {
	return Option{
		Folder:        c.Folder,
		MinWidth:      c.MinWidth,
		TargetWidth:   c.TargetWidth,
		Quality:       c.Quality,
		Marker:        c.Marker,
		AtomicReplace: c.AtomicReplace,
	}
}

func (o Option) resizeOption(gated bool) cimg.ResizeOption {
	ropt := cimg.ResizeOption{
		Width:       o.TargetWidth,
		Gated:       gated,
		WriteOption: cimg.WriteOption{Quality: cimg.Quality(o.Quality)},
	}
	if gated {
		ropt.MinWidth = o.MinWidth
	}
	return ropt
}

// saveFile writes every derived image
var saveFile = cimg.SaveFile

func logger() zlog.Logger {
	return zlog.Get()
}
