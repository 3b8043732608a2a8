package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapsed", "My Trip! #1", "my-trip-1"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"uppercase", "STREET Photography", "street-photography"},
		{"leading and trailing junk", "  --Wedding Shots--  ", "wedding-shots"},
		{"consecutive separators", "black___and...white", "black-and-white"},
		{"digits kept", "35mm Film 2024", "35mm-film-2024"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
