package domain

import "testing"

func TestValidConfidence(t *testing.T) {
	tests := []struct {
		in   Confidence
		want Confidence
	}{
		{ConfidenceLow, ConfidenceLow},
		{ConfidenceMedium, ConfidenceMedium},
		{ConfidenceHigh, ConfidenceHigh},
		{"", ConfidenceLow},
		{"very high", ConfidenceLow},
	}

	for _, tt := range tests {
		if got := ValidConfidence(tt.in); got != tt.want {
			t.Errorf("ValidConfidence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidOrientation(t *testing.T) {
	tests := []struct {
		in   Orientation
		want Orientation
	}{
		{OrientationB2B, OrientationB2B},
		{OrientationB2C, OrientationB2C},
		{OrientationMixed, OrientationMixed},
		{OrientationUnknown, OrientationUnknown},
		{"", OrientationUnknown},
		{"b2b2c", OrientationUnknown},
	}

	for _, tt := range tests {
		if got := ValidOrientation(tt.in); got != tt.want {
			t.Errorf("ValidOrientation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
