package batch

import (
	"fmt"
	"image"
	"io"

	cimg "github.com/go-imsto/resized/image"
)

// Status of one file in a batch
type Status int8

const (
	StatusResized Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusResized:
		return "resized"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of one eligible file
type Result struct {
	Name    string // entry the batch picked up
	Derived string // derived filename written or to be written
	Status  Status
	Reason  string
	Err     error
	From    cimg.Attr // dimensions of the original
	To      cimg.Attr // dimensions written
}

func (r Result) fail(err error) Result {
	r.Status = StatusFailed
	r.Err = err
	return r
}

func (r Result) done(m image.Image) Result {
	b := m.Bounds()
	r.Status = StatusResized
	r.To = *cimg.NewAttr(uint(b.Dx()), uint(b.Dy()), 0)
	r.To.Name = r.Derived
	r.To.Ext = r.From.Ext
	r.To.Format = r.From.Format
	return r
}

func (r Result) String() string {
	switch r.Status {
	case StatusResized:
		return fmt.Sprintf("resized %s (%s) -> %s (%s)", r.Name, r.From, r.Derived, r.To)
	case StatusSkipped:
		return fmt.Sprintf("skipped %s (%s): %s", r.Name, r.From, r.Reason)
	case StatusFailed:
		return fmt.Sprintf("error processing %s: %s", r.Name, r.Err)
	}
	return r.Name
}

// Report collects the results of one pass in listing order
type Report struct {
	Op      string
	Folder  string
	Results []Result
}

func (rp *Report) add(r Result) {
	switch r.Status {
	case StatusFailed:
		logger().Warnw("fail", "op", rp.Op, "name", r.Name, "err", r.Err)
	case StatusSkipped:
		logger().Infow("skip", "op", rp.Op, "name", r.Name, "size", r.From.String(), "reason", r.Reason)
	default:
		logger().Infow("done", "op", rp.Op, "name", r.Name, "derived", r.Derived,
			"from", r.From.String(), "to", r.To.String())
	}
	rp.Results = append(rp.Results, r)
}

// Counts returns the number of results by status
func (rp *Report) Counts() map[Status]int {
	m := make(map[Status]int, 3)
	for _, r := range rp.Results {
		m[r.Status]++
	}
	return m
}

// Failed ...
func (rp *Report) Failed() []Result {
	var out []Result
	for _, r := range rp.Results {
		if r.Status == StatusFailed {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the result of the named entry
func (rp *Report) Find(name string) (Result, bool) {
	for _, r := range rp.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// WriteTo renders one line per result and a summary, not meant for parsing
func (rp *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s images in %s\n", rp.Op, rp.Folder)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, r := range rp.Results {
		n, err = fmt.Fprintf(w, "  %s\n", r)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	c := rp.Counts()
	n, err = fmt.Fprintf(w, "done: %d resized, %d skipped, %d failed\n",
		c[StatusResized], c[StatusSkipped], c[StatusFailed])
	total += int64(n)
	return total, err
}
