package image

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// ReadAttr decodes only the header of file
func ReadAttr(filename string) (*Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ic, format, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(filename), err)
	}
	a := NewAttr(uint(ic.Width), uint(ic.Height), 0)
	a.Format = format
	a.Ext = filepath.Ext(filename)
	a.Name = filepath.Base(filename)
	return a, nil
}

// Load decodes the whole file
func Load(filename string) (image.Image, *Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	m, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", filepath.Base(filename), err)
	}
	b := m.Bounds()
	a := NewAttr(uint(b.Dx()), uint(b.Dy()), 0)
	a.Format = format
	a.Ext = filepath.Ext(filename)
	a.Name = filepath.Base(filename)
	return m, a, nil
}

// SaveTo encodes m by opt.Format, the quality only applies to jpeg
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (err error) {
	switch opt.Format {
	case "jpeg", "jpg":
		q := opt.Quality
		if q == 0 {
			q = DefaultQuality
		} else if q > MaxQuality {
			q = MaxQuality
		}
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: int(q)})
	case "png":
		err = png.Encode(w, m)
	case "gif":
		err = gif.Encode(w, m, nil)
	case "bmp":
		err = bmp.Encode(w, m)
	default:
		err = fmt.Errorf("%w: %q", ErrorFormat, opt.Format)
	}
	return
}

// SaveFile creates or truncates filename and writes m into it.
// The format falls back to the extension of filename.
func SaveFile(filename string, m image.Image, opt WriteOption) error {
	if opt.Format == "" {
		opt.Format = Ext2Format(filepath.Ext(filename))
	}
	if opt.Format == "" {
		return fmt.Errorf("%w: %s", ErrorFormat, filepath.Base(filename))
	}
	out, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if err = SaveTo(bw, m, opt); err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
