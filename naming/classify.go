package naming

import (
	"path/filepath"

	"github.com/go-imsto/resized/base"
	"github.com/go-imsto/resized/utils"
)

// Mode selects the marker polarity of a batch.
type Mode int

const (
	ModeGenerate Mode = iota
	ModeReplace
)

func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeReplace:
		return "replace"
	}
	return "unknown"
}

// Classifier decides which directory entries take part in a batch.
type Classifier struct {
	Mapper
}

// NewClassifier ...
func NewClassifier(marker string) Classifier {
	return Classifier{Mapper: NewMapper(marker)}
}

// Match checks the name only: a recognized image extension in any case,
// then the marker polarity of mode.
func (c Classifier) Match(name string, mode Mode) bool {
	_, ext := SplitName(name)
	if !base.IsImageExt(ext) {
		return false
	}
	switch mode {
	case ModeGenerate:
		return !c.IsDerived(name)
	case ModeReplace:
		return c.IsDerived(name)
	}
	return false
}

// Eligible checks that dir/name is a regular file (symlinks followed) and
// then applies Match. Any failed check is a silent skip.
func (c Classifier) Eligible(dir, name string, mode Mode) bool {
	return utils.IsRegular(filepath.Join(dir, name)) && c.Match(name, mode)
}
