// Package cmd The command line tool for running resized batches.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/resized/config"
	zlog "github.com/go-imsto/resized/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: resized %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex

	stdout io.Writer = os.Stdout
)

var commands = []*Command{
	cmdGenerate,
	cmdReplace,
	cmdScan,
}

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

// Main parses os.Args and exits with the status of the command
func Main() {
	flag.Usage = func() { usage(os.Stderr); os.Exit(2) }
	flag.Parse()

	if config.InDevelop() {
		setLogger(zap.NewDevelopment())
		logger().Debugw("logger start")
	} else {
		setLogger(zap.NewProduction())
	}

	run(flag.Args())
	exit()
}

// setLogger installs zlogger, the slog default stays when zap fails to build
func setLogger(zlogger *zap.Logger, err error) {
	if err != nil {
		logger().Warnw("zap logger fail, keep default", "err", err)
		return
	}
	atExit(func() { _ = zlogger.Sync() }) // flushes buffer, if any
	zlog.Set(zlogger.Sugar())
}

func run(args []string) {
	if len(args) < 1 || args[0] == "help" {
		if len(args) > 1 {
			for _, cmd := range commands {
				if cmd.Name() == args[1] {
					tmpl(stdout, helpTemplate, cmd)
					return
				}
			}
		}
		if len(args) == 1 {
			usage(stdout)
			return
		}
		usage(os.Stderr)
		setExitStatus(2)
		return
	}

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			if err := cmd.Flag.Parse(args[1:]); err != nil {
				setExitStatus(2)
				return
			}
			if !cmd.Run(cmd.Flag.Args()) {
				setExitStatus(1)
			}
			return
		}
	}

	errorf("unknown command %q\nRun 'resized help' for usage.\n", args[0])
	setExitStatus(2)
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: resized command [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "resized help [command]" for more information.
`

var helpTemplate = `usage: resized {{.UsageLine}}
{{.Long}}
`

func usage(w io.Writer) {
	fmt.Fprintln(w, "version ", config.Version)
	tmpl(w, usageTemplate, commands)
	fmt.Fprintln(w, "\nEnvironment variables, used as flag defaults:")
	if err := config.Usage(w); err != nil {
		logger().Warnw("config usage fail", "err", err)
	}
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}
