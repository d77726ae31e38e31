package batch

import (
	"os"
	"path/filepath"

	cimg "github.com/go-imsto/resized/image"
	"github.com/go-imsto/resized/naming"
)

// Generate writes a derived copy for every original in opt.Folder narrower
// than opt.MinWidth. Only a failed directory listing is returned as error,
// per-file failures end up in the report.
func Generate(opt Option) (*Report, error) {
	entries, err := os.ReadDir(opt.Folder)
	if err != nil {
		return nil, err
	}
	cf := naming.NewClassifier(opt.Marker)
	rp := &Report{Op: naming.ModeGenerate.String(), Folder: opt.Folder}
	for _, ent := range entries {
		name := ent.Name()
		if !cf.Eligible(opt.Folder, name, naming.ModeGenerate) {
			continue
		}
		rp.add(generateOne(opt, cf.Mapper, name))
	}
	return rp, nil
}

func generateOne(opt Option, mapper naming.Mapper, name string) Result {
	res := Result{Name: name, Derived: mapper.Derived(name)}
	src := filepath.Join(opt.Folder, name)

	attr, err := cimg.ReadAttr(src)
	if err != nil {
		return res.fail(err)
	}
	res.From = *attr

	ropt := opt.resizeOption(true)
	if !ropt.NeedResize(uint(attr.Width)) {
		res.Status = StatusSkipped
		res.Reason = "already large"
		return res
	}

	m, _, err := cimg.Load(src)
	if err != nil {
		return res.fail(err)
	}
	logger().Debugw("processing", "name", name, "size", attr.String(), "opt", ropt.String())
	rm, err := cimg.ResizeImage(m, &ropt)
	if err != nil {
		return res.fail(err)
	}

	dest := filepath.Join(opt.Folder, res.Derived)
	if err = saveFile(dest, rm, ropt.WriteOption); err != nil {
		return res.fail(err)
	}
	return res.done(rm)
}
