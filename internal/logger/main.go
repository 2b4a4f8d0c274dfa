// Package logger configures the global zerolog logger of the portal.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log output by level: trace, warn and error and up each
// get their own writer, debug and info share InfoWriter.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel implements zerolog.LevelWriter.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter
	}

	if w == nil {
		return len(p), nil
	}

	return w.Write(p) //nolint:wrapcheck
}

// Write sends level-less events to the info writer.
func (lw *LevelWriter) Write(p []byte) (int, error) {
	return lw.WriteLevel(zerolog.NoLevel, p)
}

// Init the zerolog logger.
// Depending on the config it enables the console logger, the file logger,
// both or none.
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fileWriter, err := newRollingLevelFiles(cfg.File)
		if err != nil {
			return err
		}

		writers = append(writers, fileWriter)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// NewRollingFile returns a lumberjack writer for rotation below dir. The
// directory is created when missing.
func NewRollingFile(dir string, rotation Rotation) (io.Writer, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
			return nil, errors.Wrapf(err, "can't create log directory %s", dir)
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(dir, rotation.File),
		MaxSize:    rotation.MaxSize,
		MaxAge:     rotation.MaxAge,
		MaxBackups: rotation.MaxBackups,
		LocalTime:  false,
		Compress:   false,
	}, nil
}

func newRollingLevelFiles(cfg LogFile) (io.Writer, error) {
	var (
		lw  LevelWriter
		err error
	)

	targets := []struct {
		w        *io.Writer
		rotation Rotation
	}{
		{&lw.ErrorWriter, cfg.Error()},
		{&lw.InfoWriter, cfg.Info()},
		{&lw.TraceWriter, cfg.Trace()},
		{&lw.WarnWriter, cfg.Warn()},
	}

	for _, target := range targets {
		if *target.w, err = NewRollingFile(cfg.Path, target.rotation); err != nil {
			return nil, err
		}
	}

	return &lw, nil
}

// NewConsoleWriter writes info and debug to stdout and everything else to
// stderr, as JSON or through zerolog's human readable console writer.
func NewConsoleWriter(cfg Log) io.Writer {
	wrap := func(out io.Writer) io.Writer {
		if !cfg.Console.UseConsoleWriter {
			return out
		}

		return zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    false,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return &LevelWriter{
		ErrorWriter: wrap(os.Stderr),
		InfoWriter:  wrap(os.Stdout),
		TraceWriter: wrap(os.Stderr),
		WarnWriter:  wrap(os.Stderr),
	}
}
