/*
File    : beeline/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestMain_ToZerologLevel verifies the 0..5 debug level mapping onto
// zerolog's severity scale
func TestMain_ToZerologLevel(t *testing.T) {
	tests := []struct {
		debugLevel int
		expected   zerolog.Level
	}{
		{0, zerolog.TraceLevel},
		{1, zerolog.DebugLevel},
		{2, zerolog.InfoLevel},
		{3, zerolog.WarnLevel},
		{4, zerolog.ErrorLevel},
		{5, zerolog.FatalLevel},
	}
	for _, tt := range tests {
		if got := toZerologLevel(tt.debugLevel); got != tt.expected {
			t.Errorf("level %d: expected %v, got %v", tt.debugLevel, tt.expected, got)
		}
	}
}
