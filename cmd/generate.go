package cmd

import (
	"github.com/go-imsto/resized/batch"
	"github.com/go-imsto/resized/config"
)

var cmdGenerate = &Command{
	UsageLine: "generate -d leftover -min 800 -w 300",
	Short:     "write a resized copy of every narrow original",
	Long: `
Write <name>_resized<ext> next to every original image in the folder
whose width is below -min. The copy is -w pixels wide and keeps the
aspect ratio. Wider originals and existing resized files are left alone.
`,
}

var genOpt batch.Option

func init() {
	cmdGenerate.Run = runGenerate
	genOpt = batch.OptionFromConfig(config.Current)
	cmdGenerate.Flag.StringVar(&genOpt.Folder, "d", genOpt.Folder, "image folder")
	cmdGenerate.Flag.UintVar(&genOpt.MinWidth, "min", genOpt.MinWidth, "originals at or above this width are skipped")
	cmdGenerate.Flag.UintVar(&genOpt.TargetWidth, "w", genOpt.TargetWidth, "width of resized copies")
	qualityVar(&cmdGenerate.Flag, &genOpt.Quality)
	cmdGenerate.Flag.StringVar(&genOpt.Marker, "m", genOpt.Marker, "stem marker of resized copies")
}

func runGenerate(args []string) bool {
	if len(args) > 0 {
		genOpt.Folder = args[0]
	}
	logger().Infow("generate", "folder", genOpt.Folder, "min", genOpt.MinWidth, "width", genOpt.TargetWidth)
	rp, err := batch.Generate(genOpt)
	if err != nil {
		logger().Errorw("generate fail", "folder", genOpt.Folder, "err", err)
		return false
	}
	if _, err = rp.WriteTo(stdout); err != nil {
		logger().Warnw("write report fail", "err", err)
	}
	return true
}
