package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyBehindPace(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		now      time.Time
		behind   bool
	}{
		{"on pace mid-month", 50.0, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), false},
		{"behind late in month", 40.0, time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), true},
		{"ahead early in month", 30.0, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), false},
		{"goal already met", 110.0, time.Date(2024, time.June, 29, 0, 0, 0, 0, time.UTC), false},
		{"zero progress on day one", 0.0, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), true},
		{"leap february full month", 99.0, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.behind, monthlyBehindPace(tt.progress, tt.now))
		})
	}
}
