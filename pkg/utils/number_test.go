package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"arredonda para cima", 10.456, 10.46},
		{"arredonda para baixo", 10.454, 10.45},
		{"zero permanece zero", 0, 0},
		{"valor negativo", -3.578, -3.58},
		{"já com duas casas", 7.25, 7.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}
