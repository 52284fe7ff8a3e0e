// Package logging configures the process-wide logger.
package logging

import (
	log "github.com/sirupsen/logrus"
)

// Init sets up console logging. Debug enables step-level tracing.
func Init(debug bool) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
