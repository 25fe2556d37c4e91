package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsProfanity(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a perfectly fine review", false},
		{"this game is shit", true},
		{"ThIs GaMe Is ShIt", true},
		{"bullshit mechanics", true}, // substring match is intentional
		{"", false},
		{"shiny graphics", false},
		{"scumbag protagonist", true}, // "cum" inside "scum"
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsProfanity(tt.input), "input %q", tt.input)
	}
}

func TestAllowedImageFile(t *testing.T) {
	allowed := []string{"cover.png", "cover.jpg", "cover.jpeg", "COVER.PNG", "a.b.c.jpg"}
	for _, name := range allowed {
		assert.True(t, AllowedImageFile(name), "file %q", name)
	}

	rejected := []string{"script.exe", "cover.gif", "cover.png.exe", "noextension", "", ".png.txt"}
	for _, name := range rejected {
		assert.False(t, AllowedImageFile(name), "file %q", name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cover.png", "cover.png"},
		{"../../etc/passwd", "passwd"},
		{"/absolute/path/cover.jpg", "cover.jpg"},
		{"my cover!.png", "my_cover_.png"},
		{"snake_case-file.jpeg", "snake_case-file.jpeg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.input), "input %q", tt.input)
	}
}
