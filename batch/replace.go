package batch

import (
	"image"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	cimg "github.com/go-imsto/resized/image"
	"github.com/go-imsto/resized/naming"
)

// Replace regenerates every derived image in opt.Folder from its current
// original, whatever the original width is. A derived file whose original
// is missing or broken is left untouched.
func Replace(opt Option) (*Report, error) {
	entries, err := os.ReadDir(opt.Folder)
	if err != nil {
		return nil, err
	}
	cf := naming.NewClassifier(opt.Marker)
	rp := &Report{Op: naming.ModeReplace.String(), Folder: opt.Folder}
	for _, ent := range entries {
		name := ent.Name()
		if !cf.Eligible(opt.Folder, name, naming.ModeReplace) {
			continue
		}
		rp.add(replaceOne(opt, cf.Mapper, name))
	}
	return rp, nil
}

func replaceOne(opt Option, mapper naming.Mapper, name string) Result {
	res := Result{Name: name, Derived: name}
	orig := mapper.Original(name)

	m, attr, err := cimg.Load(filepath.Join(opt.Folder, orig))
	if err != nil {
		return res.fail(err)
	}
	res.From = *attr
	logger().Infow("processing", "orig", orig, "current", attr.String())

	ropt := opt.resizeOption(false)
	rm, err := cimg.ResizeImage(m, &ropt)
	if err != nil {
		return res.fail(err)
	}
	ropt.Format = cimg.Ext2Format(filepath.Ext(name))

	dest := filepath.Join(opt.Folder, name)
	if opt.AtomicReplace {
		err = swapFile(dest, rm, ropt.WriteOption)
	} else {
		err = rewriteFile(dest, rm, ropt.WriteOption)
	}
	if err != nil {
		return res.fail(err)
	}
	return res.done(rm)
}

// rewriteFile deletes dest before writing it again, a failed write loses dest.
func rewriteFile(dest string, m image.Image, wopt cimg.WriteOption) error {
	logger().Infow("deleting old", "name", filepath.Base(dest))
	if err := os.Remove(dest); err != nil {
		return err
	}
	if err := saveFile(dest, m, wopt); err != nil {
		logger().Errorw("derived file lost", "name", filepath.Base(dest), "err", err)
		return err
	}
	b := m.Bounds()
	logger().Infow("created new", "name", filepath.Base(dest), "size", cimg.NewAttr(uint(b.Dx()), uint(b.Dy()), 0).String())
	return nil
}

// swapFile writes a temp file next to dest and renames it over dest,
// dest stays as it was on any failure.
func swapFile(dest string, m image.Image, wopt cimg.WriteOption) (err error) {
	tf, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := tf.Name()
	if err = tf.Close(); err != nil {
		return multierr.Append(err, os.Remove(tmp))
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp))
		}
	}()

	if err = saveFile(tmp, m, wopt); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}
	if err = os.Rename(tmp, dest); err != nil {
		return err
	}
	b := m.Bounds()
	logger().Infow("replaced", "name", filepath.Base(dest), "size", cimg.NewAttr(uint(b.Dx()), uint(b.Dy()), 0).String())
	return nil
}
