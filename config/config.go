package config

import (
	"io"

	"github.com/kelseyhightower/envconfig"

	zlog "github.com/go-imsto/resized/log"
)

// NameSpace is the prefix of environment variables
const NameSpace = "resized"

// Version set by ldflags
var Version = "dev"

// Config ...
type Config struct {
	Develop       bool   `envconfig:"DEVELOP"`
	Folder        string `envconfig:"FOLDER" default:"leftover"`
	MinWidth      uint   `envconfig:"MIN_WIDTH" default:"800"`
	TargetWidth   uint   `envconfig:"TARGET_WIDTH" default:"300"`
	Quality       uint8  `envconfig:"QUALITY" default:"95"`
	Marker        string `envconfig:"MARKER" default:"_resized"`
	AtomicReplace bool   `envconfig:"ATOMIC_REPLACE"`
}

// Current loaded from environment at startup
var Current = new(Config)

func init() {
	if err := Load(Current); err != nil {
		zlog.Get().Fatalw("load config fail", "err", err)
	}
}

// Load fills c from RESIZED_* environment variables, the tag defaults fill the rest.
// c is left as it was on error.
func Load(c *Config) error {
	var nc Config
	if err := envconfig.Process(NameSpace, &nc); err != nil {
		return err
	}
	*c = nc
	return nil
}

// InDevelop ...
func InDevelop() bool {
	return Current.Develop
}

// Usage writes the environment variables understood as a table
func Usage(w io.Writer) error {
	return envconfig.Usagef(NameSpace, Current, w, envconfig.DefaultTableFormat)
}
