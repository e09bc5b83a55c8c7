package model

import (
	"math"
	"testing"
	"time"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-10, 0},
		{0, 0},
		{35.5, 35.5},
		{100, 100},
		{150, 100},
		{math.NaN(), 0},
	}

	for _, test := range tests {
		result := ClampPercent(test.input)
		if result != test.expected {
			t.Errorf("ClampPercent(%v) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestNewProgress_Rounding(t *testing.T) {
	p := NewProgress(PhaseProcessing, 59.5, "chunk", time.Second)
	if p.Rounded != 60 {
		t.Errorf("Expected rounded 60, got %d", p.Rounded)
	}
	if p.Fraction() != 0.595 {
		t.Errorf("Expected fraction 0.595, got %v", p.Fraction())
	}

	over := NewProgress(PhaseDone, 120, "done", 0)
	if over.Percent != 100 || over.Rounded != 100 {
		t.Errorf("Expected clamped 100, got %v/%d", over.Percent, over.Rounded)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{-time.Second, "00:00"},
		{0, "00:00"},
		{1400 * time.Millisecond, "00:01"},
		{1600 * time.Millisecond, "00:02"},
		{90 * time.Second, "01:30"},
		{3661 * time.Second, "01:01:01"},
	}

	for _, test := range tests {
		result := FormatElapsed(test.elapsed)
		if result != test.expected {
			t.Errorf("FormatElapsed(%v) = %s, expected %s", test.elapsed, result, test.expected)
		}
	}
}
