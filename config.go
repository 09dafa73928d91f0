package fshidden

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Timeout           time.Duration      // duration to wait for events to be grouped and processed
	IgnoreSysFiles    bool               // ignore common system files and directories
	IgnoreHiddenFiles bool               // ignore files IsHidden reports as hidden
	EmitChmod         bool               // emit chmod events
	IgnorePath        string             // .gitignore path
	Logger            logrus.FieldLogger // defaults to logrus.StandardLogger()
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:           300 * time.Millisecond,
		IgnoreSysFiles:    true,
		IgnoreHiddenFiles: true,
		EmitChmod:         false,
		IgnorePath:        "",
	}
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
