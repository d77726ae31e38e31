package cmd

import (
	"github.com/go-imsto/resized/batch"
	"github.com/go-imsto/resized/config"
)

var cmdReplace = &Command{
	UsageLine: "replace -d leftover -w 300 [-atomic]",
	Short:     "regenerate every resized copy from its original",
	Long: `
For every <name>_resized<ext> in the folder, resize <name><ext> to -w
pixels wide, whatever its width, delete the old copy and write the new one.
A copy whose original is missing is reported and kept.

Without -atomic the old copy is deleted before the new one is written,
so a failed write loses it. With -atomic the new copy is written to a
temporary file and renamed over the old one.
`,
}

var repOpt batch.Option

func init() {
	cmdReplace.Run = runReplace
	repOpt = batch.OptionFromConfig(config.Current)
	cmdReplace.Flag.StringVar(&repOpt.Folder, "d", repOpt.Folder, "image folder")
	cmdReplace.Flag.UintVar(&repOpt.TargetWidth, "w", repOpt.TargetWidth, "width of resized copies")
	qualityVar(&cmdReplace.Flag, &repOpt.Quality)
	cmdReplace.Flag.StringVar(&repOpt.Marker, "m", repOpt.Marker, "stem marker of resized copies")
	cmdReplace.Flag.BoolVar(&repOpt.AtomicReplace, "atomic", repOpt.AtomicReplace, "write a temp file then rename it over the old copy")
}

func runReplace(args []string) bool {
	if len(args) > 0 {
		repOpt.Folder = args[0]
	}
	logger().Infow("replace", "folder", repOpt.Folder, "width", repOpt.TargetWidth, "atomic", repOpt.AtomicReplace)
	rp, err := batch.Replace(repOpt)
	if err != nil {
		logger().Errorw("replace fail", "folder", repOpt.Folder, "err", err)
		return false
	}
	if _, err = rp.WriteTo(stdout); err != nil {
		logger().Warnw("write report fail", "err", err)
	}
	return true
}
