package conf

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// InitLogger apply Cfg.Log to the standard logrus logger
func InitLogger() error {
	level, err := logrus.ParseLevel(Cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	logrus.SetLevel(level)

	switch Cfg.Log.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log.format %q (expected text or json)", Cfg.Log.Format)
	}
	return nil
}
