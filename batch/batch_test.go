package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cimg "github.com/go-imsto/resized/image"
)

func writeImage(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 3 {
		for x := 0; x < w; x++ {
			m.SetGray(x, y, color.Gray{Y: uint8(x + y)})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		require.NoError(t, png.Encode(f, m))
	default:
		require.NoError(t, jpeg.Encode(f, m, nil))
	}
}

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
}

func sizeOf(t *testing.T, dir, name string) string {
	t.Helper()
	a, err := cimg.ReadAttr(filepath.Join(dir, name))
	require.NoError(t, err)
	return a.String()
}

func testOption(dir string) Option {
	opt := DefaultOption()
	opt.Folder = dir
	return opt
}

func TestDefaultOption(t *testing.T) {
	opt := DefaultOption()
	assert.Equal(t, uint(800), opt.MinWidth)
	assert.Equal(t, uint(300), opt.TargetWidth)
	assert.Equal(t, uint8(95), opt.Quality)
	assert.Equal(t, "_resized", opt.Marker)
	assert.False(t, opt.AtomicReplace)
}

func TestGenerateThreshold(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "small.png", 600, 900)
	writeImage(t, dir, "large.png", 1000, 500)
	writeImage(t, dir, "edge.jpg", 800, 400)

	rp, err := Generate(testOption(dir))
	require.NoError(t, err)
	assert.Len(t, rp.Results, 3)

	assert.Equal(t, "300x450", sizeOf(t, dir, "small_resized.png"))
	r, ok := rp.Find("small.png")
	require.True(t, ok)
	assert.Equal(t, StatusResized, r.Status)
	assert.Equal(t, "small_resized.png", r.Derived)
	assert.Equal(t, "600x900", r.From.String())
	assert.Equal(t, "300x450", r.To.String())

	for _, name := range []string{"large.png", "edge.jpg"} {
		r, ok = rp.Find(name)
		require.True(t, ok)
		assert.Equal(t, StatusSkipped, r.Status)
		assert.Equal(t, "already large", r.Reason)
	}
	assert.NoFileExists(t, filepath.Join(dir, "large_resized.png"))
	assert.NoFileExists(t, filepath.Join(dir, "edge_resized.jpg"))
}

func TestGenerateIgnores(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.PNG", 100, 50)
	writeImage(t, dir, "a_resized.png", 100, 50)
	writeFile(t, dir, "notes.txt", "hello")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))
	writeImage(t, filepath.Join(dir, "sub.png"), "deep.png", 100, 50)

	rp, err := Generate(testOption(dir))
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	assert.Equal(t, "a.PNG", rp.Results[0].Name)
	assert.Equal(t, "300x150", sizeOf(t, dir, "a_resized.PNG"))
	assert.NoFileExists(t, filepath.Join(dir, "a_resized_resized.png"))
	assert.NoFileExists(t, filepath.Join(dir, "sub.png", "deep_resized.png"))
}

func TestGenerateTwice(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.jpg", 600, 900)
	opt := testOption(dir)

	_, err := Generate(opt)
	require.NoError(t, err)
	first := sizeOf(t, dir, "photo_resized.jpg")

	rp, err := Generate(opt)
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	assert.Equal(t, StatusResized, rp.Results[0].Status)
	assert.Equal(t, first, sizeOf(t, dir, "photo_resized.jpg"))
}

func TestGenerateIsolation(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 200, 100)
	writeImage(t, dir, "b.png", 1200, 100)
	writeFile(t, dir, "c.png", "garbage, not a png")
	writeImage(t, dir, "d.jpg", 400, 400)
	writeImage(t, dir, "e.png", 600, 300)

	rp, err := Generate(testOption(dir))
	require.NoError(t, err)
	require.Len(t, rp.Results, 5)

	c := rp.Counts()
	assert.Equal(t, 3, c[StatusResized])
	assert.Equal(t, 1, c[StatusSkipped])
	assert.Equal(t, 1, c[StatusFailed])

	failed := rp.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "c.png", failed[0].Name)
	assert.Error(t, failed[0].Err)

	assert.FileExists(t, filepath.Join(dir, "a_resized.png"))
	assert.FileExists(t, filepath.Join(dir, "d_resized.jpg"))
	assert.FileExists(t, filepath.Join(dir, "e_resized.png"))
	assert.NoFileExists(t, filepath.Join(dir, "c_resized.png"))
}

func TestGenerateListError(t *testing.T) {
	_, err := Generate(testOption(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
	_, err = Replace(testOption(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}

func TestReplaceMissingOriginal(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo_resized.jpg", 120, 80)
	before, err := os.ReadFile(filepath.Join(dir, "photo_resized.jpg"))
	require.NoError(t, err)

	for _, atomic := range []bool{false, true} {
		opt := testOption(dir)
		opt.AtomicReplace = atomic
		rp, err := Replace(opt)
		require.NoError(t, err)
		require.Len(t, rp.Results, 1)
		assert.Equal(t, StatusFailed, rp.Results[0].Status)
		assert.True(t, os.IsNotExist(rp.Results[0].Err))

		after, err := os.ReadFile(filepath.Join(dir, "photo_resized.jpg"))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

func TestReplaceUnconditional(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.jpg", 4000, 3000)
	writeImage(t, dir, "photo_resized.jpg", 120, 80)
	writeImage(t, dir, "other.png", 50, 50)

	rp, err := Replace(testOption(dir))
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	r := rp.Results[0]
	assert.Equal(t, StatusResized, r.Status)
	assert.Equal(t, "photo_resized.jpg", r.Name)
	assert.Equal(t, "4000x3000", r.From.String())
	assert.Equal(t, "300x225", r.To.String())
	assert.Equal(t, "300x225", sizeOf(t, dir, "photo_resized.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "other_resized.png"))
}

func TestReplaceAtomic(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "pic.png", 600, 900)
	writeImage(t, dir, "pic_resized.png", 10, 10)

	opt := testOption(dir)
	opt.AtomicReplace = true
	rp, err := Replace(opt)
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	assert.Equal(t, StatusResized, rp.Results[0].Status)
	assert.Equal(t, "300x450", sizeOf(t, dir, "pic_resized.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp file left behind")
}

func TestReplaceMarkerEverywhere(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a_b.png", 100, 100)
	writeImage(t, dir, "a_resized_b_resized.png", 10, 10)

	rp, err := Replace(testOption(dir))
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	assert.Equal(t, StatusResized, rp.Results[0].Status)
	assert.Equal(t, "300x300", sizeOf(t, dir, "a_resized_b_resized.png"))
}

func TestReplaceZeroHeight(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "strip.png", 3000, 1)
	writeImage(t, dir, "strip_resized.png", 10, 10)

	rp, err := Replace(testOption(dir))
	require.NoError(t, err)
	require.Len(t, rp.Results, 1)
	assert.Equal(t, StatusFailed, rp.Results[0].Status)
	assert.ErrorIs(t, rp.Results[0].Err, cimg.ErrZeroDimension)
	assert.Equal(t, "10x10", sizeOf(t, dir, "strip_resized.png"))
}

func TestReportWriteTo(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 600, 900)
	writeImage(t, dir, "b.png", 900, 900)
	writeFile(t, dir, "c.png", "broken")

	rp, err := Generate(testOption(dir))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := rp.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	out := buf.String()
	assert.Contains(t, out, "generate images in "+dir)
	assert.Contains(t, out, "resized a.png (600x900) -> a_resized.png (300x450)")
	assert.Contains(t, out, "skipped b.png (900x900): already large")
	assert.Contains(t, out, "error processing c.png")
	assert.Contains(t, out, "done: 1 resized, 1 skipped, 1 failed")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "resized", StatusResized.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(7).String())
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 10, 10)
	writeImage(t, dir, "a_resized.png", 10, 10)
	writeImage(t, dir, "b.jpg", 10, 10)
	writeImage(t, dir, "lost_resized.jpg", 10, 10)
	writeFile(t, dir, "readme.md", "#")

	inv, err := Scan(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.jpg"}, inv.Originals)
	assert.Equal(t, []string{"a_resized.png", "lost_resized.jpg"}, inv.Derived)
	assert.Equal(t, []string{"b.jpg"}, inv.Pending)
	assert.Equal(t, []string{"lost_resized.jpg"}, inv.Orphans)

	var buf bytes.Buffer
	_, err = inv.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "orphans (1):\n  lost_resized.jpg\n")

	_, err = Scan(filepath.Join(dir, "missing"), "")
	assert.Error(t, err)
}
