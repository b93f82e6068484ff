package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeLabel_PlaceholderPhrases(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "first middle last slots", value: "First Middle Last", want: true},
		{name: "city state zip slots", value: "City, State, Zip", want: true},
		{name: "name of insured", value: "Name of Insured", want: true},
		{name: "policy number label", value: "Policy Number", want: true},
		{name: "date of birth label", value: "Date of Birth", want: true},
		{name: "real name", value: "Jane Doe", want: false},
		{name: "real address", value: "123 Main St, Springfield, IL", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.looksLikeLabel(tt.value))
		})
	}
}

func TestLooksLikeLabel_UppercaseHeuristic(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "three uppercase words", value: "INSURED LOCATION CODE", want: true},
		{name: "two uppercase words only", value: "LOSS NOTICE", want: false},
		{name: "repeated word not distinct", value: "AAA AAA AAA", want: false},
		{name: "mixed case", value: "Insured Location Code", want: false},
		{name: "mostly lowercase", value: "the INSURED LOCATION CODE here", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.looksLikeLabel(tt.value))
		})
	}
}

func TestIsNoise(t *testing.T) {
	labelRun := "Policy Number Incident Date Claim Type Estimated Damage"

	tests := []struct {
		name      string
		value     string
		maxLen    int
		labelHits int
		want      bool
	}{
		{name: "oversized", value: strings.Repeat("x", 201), maxLen: 200, labelHits: 3, want: true},
		{name: "within size", value: strings.Repeat("x", 200), maxLen: 200, labelHits: 3, want: false},
		{name: "vendor marker", value: "ACORD 1 (2016/03)", maxLen: 200, labelHits: 3, want: true},
		{name: "vendor marker lowercase", value: "acord form chrome", maxLen: 200, labelHits: 3, want: true},
		{name: "label run over threshold", value: labelRun, maxLen: 200, labelHits: 3, want: true},
		{name: "label run at lower threshold", value: "Claim Type Estimated Damage", maxLen: 200, labelHits: 2, want: true},
		{name: "single label under threshold", value: "Claim Type pending", maxLen: 200, labelHits: 2, want: false},
		{name: "genuine answer", value: "Rear-end collision at low speed", maxLen: 200, labelHits: 2, want: false},
		{name: "empty", value: "", maxLen: 200, labelHits: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.isNoise(tt.value, tt.maxLen, tt.labelHits))
		})
	}
}
