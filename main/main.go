package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adammck/footwork"
	"github.com/adammck/footwork/config"
	"github.com/adammck/footwork/pattern"
	"github.com/adammck/footwork/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run computes the foot positions for il dan (blue belt) pattern, and returns
// the exit code. Bad distances exit 1; any other bad usage exits 2.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := config.Flags("footwork")
	fs.SetOutput(stderr)

	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stdout, err)
		if errors.Is(err, footwork.ErrInvalidDistance) {
			return 1
		}
		return 2
	}

	logrus.SetOutput(stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	p, err := pattern.New(cfg.Side, cfg.LRDist, cfg.FBDist)
	if err != nil {
		logrus.Errorf("error preparing pattern: %s", err)
		return 1
	}

	logrus.Debugf("performing %s side with %s and %s", p.Side, p.Swing, p.Spin)

	err = report.Write(stdout, cfg.Format, p)
	if err != nil {
		logrus.Errorf("error writing report: %s", err)
		return 1
	}

	return 0
}
