package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-imsto/resized/naming"
	"github.com/go-imsto/resized/utils"
)

// Inventory of a folder by naming convention, nothing is decoded
type Inventory struct {
	Folder    string
	Originals []string
	Derived   []string
	Orphans   []string // derived files without an original
	Pending   []string // originals without a derived file
}

// Scan classifies the entries of folder in both modes
func Scan(folder, marker string) (*Inventory, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	cf := naming.NewClassifier(marker)
	inv := &Inventory{Folder: folder}
	for _, ent := range entries {
		name := ent.Name()
		if cf.Eligible(folder, name, naming.ModeGenerate) {
			inv.Originals = append(inv.Originals, name)
			if !utils.IsRegular(filepath.Join(folder, cf.Derived(name))) {
				inv.Pending = append(inv.Pending, name)
			}
		} else if cf.Eligible(folder, name, naming.ModeReplace) {
			inv.Derived = append(inv.Derived, name)
			if !utils.IsRegular(filepath.Join(folder, cf.Original(name))) {
				inv.Orphans = append(inv.Orphans, name)
			}
		}
	}
	return inv, nil
}

// WriteTo ...
func (inv *Inventory) WriteTo(w io.Writer) (int64, error) {
	var total int64
	section := func(title string, names []string) error {
		n, err := fmt.Fprintf(w, "%s (%d):\n", title, len(names))
		total += int64(n)
		if err != nil {
			return err
		}
		for _, name := range names {
			n, err = fmt.Fprintf(w, "  %s\n", name)
			total += int64(n)
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := section("originals", inv.Originals); err != nil {
		return total, err
	}
	if err := section("derived", inv.Derived); err != nil {
		return total, err
	}
	if err := section("pending", inv.Pending); err != nil {
		return total, err
	}
	err := section("orphans", inv.Orphans)
	return total, err
}
