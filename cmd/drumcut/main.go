// SPDX-License-Identifier: EPL-2.0

// Command drumcut isolates or silences the drum hits of a recording.
//
// Usage:
//
//	drumcut [flags] <input.{wav|aif|aiff|mp3|ogg}> <output.wav|->
//
// Flags override the values of the optional -config YAML file. An output of
// "-" streams the WAV to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/drumcut"
	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/config"
	"github.com/ik5/drumcut/formats/aiff"
	"github.com/ik5/drumcut/formats/mp3"
	"github.com/ik5/drumcut/formats/vorbis"
	"github.com/ik5/drumcut/formats/wav"
	"github.com/ik5/drumcut/window"
	"github.com/sirupsen/logrus"
)

const usageLine = "usage: drumcut [flags] <input.{wav|aif|aiff|mp3|ogg}> <output.wav|->"

var (
	errUsage       = errors.New(usageLine)
	errUnsupported = errors.New("unsupported input format")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		logrus.WithFields(logrus.Fields{
			"function": "main",
		}).WithError(err).Error("drumcut failed")
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	labels     string

	mode          string
	threshold     float64
	minDistance   int
	windowMs      int
	preFadeMs     int
	postFadeMs    int
	fadeMs        int
	attenuationDB float64
	channels      int
	workers       int
	logLevel      string
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	def := config.Default()

	fs := flag.NewFlagSet("drumcut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usageLine)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.labels, "labels", "", "write the windows as an Audacity label track to this file")
	fs.StringVar(&f.mode, "mode", string(def.Mode), "isolate or silence")
	fs.Float64Var(&f.threshold, "threshold", def.Threshold, "peak threshold as a fraction of full scale, in (0,1]")
	fs.IntVar(&f.minDistance, "min-distance", def.MinDistance, "minimum samples between peaks")
	fs.IntVar(&f.windowMs, "window-ms", def.WindowMs, "window width around each peak")
	fs.IntVar(&f.preFadeMs, "pre-fade-ms", def.Silence.PreFadeMs, "silence mode fade-out before each window")
	fs.IntVar(&f.postFadeMs, "post-fade-ms", def.Silence.PostFadeMs, "silence mode fade-in after each window")
	fs.IntVar(&f.fadeMs, "fade-ms", def.Isolate.FadeMs, "isolate mode fade at each snippet edge")
	fs.Float64Var(&f.attenuationDB, "attenuation-db", def.Silence.AttenuationDB,
		"attenuate windows by this many dB instead of silencing them")
	fs.IntVar(&f.channels, "channels", def.Output.Channels, "output channel count")
	fs.IntVar(&f.workers, "workers", def.Workers, "concurrent window jobs, 0 for GOMAXPROCS")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "log level")

	return fs
}

// apply copies the flags that were set on the command line onto cfg.
func (f *flags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.Mode = config.Mode(f.mode)
		case "threshold":
			cfg.Threshold = f.threshold
		case "min-distance":
			cfg.MinDistance = f.minDistance
		case "window-ms":
			cfg.WindowMs = f.windowMs
		case "pre-fade-ms":
			cfg.Silence.PreFadeMs = f.preFadeMs
		case "post-fade-ms":
			cfg.Silence.PostFadeMs = f.postFadeMs
		case "fade-ms":
			cfg.Isolate.FadeMs = f.fadeMs
		case "attenuation-db":
			cfg.Silence.FullSilence = false
			cfg.Silence.AttenuationDB = f.attenuationDB
		case "channels":
			cfg.Output.Channels = f.channels
		case "workers":
			cfg.Workers = f.workers
		case "log-level":
			cfg.LogLevel = f.logLevel
		}
	})
}

func loadConfig(f *flags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	f.apply(fs, &cfg)
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(&f, fs)
	if err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	logrus.SetLevel(lvl)

	buf, err := readInput(inPath)
	if err != nil {
		return err
	}

	res, err := drumcut.Process(buf, *cfg)
	if err != nil {
		return err
	}

	out, err := res.Output.Expand(cfg.Output.Channels)
	if err != nil {
		return fmt.Errorf("expand: %w", err)
	}
	if err := writeOutput(outPath, out, stdout); err != nil {
		return err
	}

	if f.labels != "" {
		if err := writeLabels(f.labels, res.Windows); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"input":    inPath,
		"output":   outPath,
		"mode":     cfg.Mode,
		"peaks":    len(res.Peaks),
		"windows":  len(res.Windows),
		"channels": out.Channels,
	}).Info("Wrote output")

	return nil
}

func readInput(path string) (*audio.Buffer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	reg := newRegistry()
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q, supported: %s", errUnsupported, ext, strings.Join(reg.Formats(), ", "))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	return drumcut.ReadMono(src, src.BufSize())
}

func writeOutput(path string, buf *audio.Buffer, stdout io.Writer) error {
	if path == "-" {
		return wav.WriteStream(stdout, buf)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(file, buf); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func writeLabels(path string, ws []window.Window) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := window.WriteLabels(file, ws); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
