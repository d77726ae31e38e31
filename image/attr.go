package image

import (
	"fmt"
)

type Dimension uint32
type Quality uint8

// Attr ...
type Attr struct {
	Width   Dimension `json:"width"`
	Height  Dimension `json:"height"`
	Quality Quality   `json:"quality,omitempty"`
	Ext     string    `json:"ext,omitempty"`
	Format  string    `json:"format,omitempty"`
	Name    string    `json:"name,omitempty"`
}

// String returns WxH
func (a Attr) String() string {
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// export NewAttr
func NewAttr(w, h uint, q uint8) *Attr {
	return &Attr{
		Width:   Dimension(w),
		Height:  Dimension(h),
		Quality: Quality(q),
	}
}
