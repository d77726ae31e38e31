package cmd

import (
	"github.com/go-imsto/resized/batch"
	"github.com/go-imsto/resized/config"
)

var cmdScan = &Command{
	UsageLine: "scan -d leftover",
	Short:     "list originals, resized copies and orphans",
	Long: `
List the images of the folder by name only: originals, resized copies,
originals without a copy (pending) and copies without an original (orphans).
Nothing is decoded or written.
`,
}

var (
	scanFolder string
	scanMarker string
)

func init() {
	cmdScan.Run = runScan
	cmdScan.Flag.StringVar(&scanFolder, "d", config.Current.Folder, "image folder")
	cmdScan.Flag.StringVar(&scanMarker, "m", config.Current.Marker, "stem marker of resized copies")
}

func runScan(args []string) bool {
	if len(args) > 0 {
		scanFolder = args[0]
	}
	inv, err := batch.Scan(scanFolder, scanMarker)
	if err != nil {
		logger().Errorw("scan fail", "folder", scanFolder, "err", err)
		return false
	}
	if _, err = inv.WriteTo(stdout); err != nil {
		logger().Warnw("write inventory fail", "err", err)
	}
	return true
}
