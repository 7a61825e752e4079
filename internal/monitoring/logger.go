// Package monitoring holds the diagnostic logger shared by flavorsim
// packages.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// can be replaced with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
