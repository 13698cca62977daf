package sink

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// Logger routes printed strings through logrus, one entry per put. Useful
// when string diagnostics should land in the host's structured log stream
// instead of a raw writer.
type Logger struct {
	L *logrus.Logger
}

func NewLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return Logger{L: l}
}

func (s Logger) PutTerminated(p []byte) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	s.L.WithField("bytes", len(p)).Info(string(p))
}

func (s Logger) Put(p []byte) {
	s.L.WithField("bytes", len(p)).Info(string(p))
}
