package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// writerAdapter forwards writes from loggers that expect an io.Writer
// (stdlib log, gin) to our JSON logger at a fixed level.
type writerAdapter struct {
	l    Interface
	warn bool
	err  bool
}

func (w writerAdapter) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\r\n"))

	switch {
	case w.err:
		w.l.Error(msg)
	case w.warn:
		w.l.Warn(msg)
	default:
		w.l.Info(msg)
	}

	return len(p), nil
}

// SetupStdLog routes the standard library log output through our JSON logger.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(writerAdapter{l: l, warn: true})
}

// SetupGin routes Gin's logs through our JSON logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = writerAdapter{l: l}
	gin.DefaultErrorWriter = writerAdapter{l: l, err: true}
}
