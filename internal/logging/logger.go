package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	FileName   string
	Level      string
	FormatJSON bool
	Stderr     io.Writer
}

// Setup configures the global logrus logger. The CLI talks to the user on
// stdout, so logs go to stderr or to a rotated file.
func Setup(params Params) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: params.FileName == "",
			FullTimestamp:    true,
		})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.FileName == "" {
		out := params.Stderr
		if out == nil {
			out = os.Stderr
		}
		logrus.SetOutput(out)
		return
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false,
		Compress:   true,
	})
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.WarnLevel
	}
}

// For returns a logger entry tagged with the component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
