package main

import (
	"log"
	"strings"
)

var debugEnabled bool

// configureLogging adjusts the standard logger per cfg.Logging, grounded in
// the same Level/Format fields the teacher's server config exposes: "json"
// format drops the timestamp prefix cobra output already interleaves with,
// and "debug" level turns on debugf output.
func configureLogging(level, format string) {
	if strings.EqualFold(format, "json") {
		log.SetFlags(0)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	debugEnabled = strings.EqualFold(level, "DEBUG")
}

func debugf(format string, args ...any) {
	if debugEnabled {
		log.Printf("DEBUG "+format, args...)
	}
}
