package htmltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetStyleDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		value string
		want  string
	}{
		{name: "hide empty", style: "", value: "none", want: "display: none"},
		{name: "show empty", style: "", value: "", want: ""},
		{name: "keep other declarations", style: "color: red;", value: "none", want: "color: red; display: none"},
		{name: "remove display", style: "display:none; color: red", value: "", want: "color: red"},
		{name: "replace duplicates", style: "display: block; DISPLAY: flex", value: "none", want: "display: none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, setStyleDisplay(tt.style, tt.value))
		})
	}
}

func TestStyleDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", styleDisplay("color: red; display:  none "))
	assert.Equal(t, "", styleDisplay("color: red"))
	assert.Equal(t, "flex", styleDisplay("display: none; display: flex"))
}
