package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log adalah logger global aplikasi (JSON ke stdout)
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init mengatur level & nama service. Level tidak dikenal jatuh ke info.
func Init(appName, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.AddHook(serviceHook{name: appName})
}

// Op membuat entry log untuk satu operasi (misal "topup.approve")
func Op(operation string) *logrus.Entry {
	return Log.WithField("op", operation)
}

type serviceHook struct{ name string }

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = h.name
	return nil
}
