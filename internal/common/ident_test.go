package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CR", "CR"},
		{"TIM_CR", "TIM_CR"},
		{"CC[%s]", "CC__s_"},
		{"1WIRE", "_1WIRE"},
		{"a-b.c", "a_b_c"},
		{"", "_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeIdent(tt.in))
	}
}
