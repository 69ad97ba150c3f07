package tokenizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRune(t *testing.T) {
	classifyTests := []struct {
		in   rune
		want Action
	}{
		{'<', ActionLT},
		{'>', ActionGT},
		{' ', ActionSpace},
		{'\t', ActionSpace},
		{'\r', ActionSpace},
		{'\n', ActionSpace},
		{'"', ActionQuote},
		{'\'', ActionQuote},
		{'=', ActionEqual},
		{'/', ActionSlash},
		{'a', ActionChar},
		{'Z', ActionChar},
		{'0', ActionChar},
		{'!', ActionChar},
		{'?', ActionChar},
		{']', ActionChar},
		{'&', ActionChar},
		{'\x00', ActionChar},
		{'é', ActionChar},
		{'世', ActionChar},
	}

	for _, tt := range classifyTests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRune(tt.in))
		})
	}
}
