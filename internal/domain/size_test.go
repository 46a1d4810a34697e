package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTargetSize(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10KB", true},
		{"1.5MB", true},
		{"500B", true},
		{"0.5KB", true},
		{"10kb", true},
		{"2Mb", true},
		{"", false},
		{"500", false},
		{"KB", false},
		{"10KBKB", false},
		{"10KBMB", false},
		{"10 KB", false},
		{" 10KB", false},
		{"10KB ", false},
		{"1.2.3MB", false},
		{".5KB", false},
		{"5.KB", false},
		{"10GB", false},
		{"-10KB", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTargetSize(tt.input))
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format Format
		want   string
	}{
		{"same keeps extension", "/a/b/image.jpg", FormatSame, "/a/b/image_resized.jpg"},
		{"empty format keeps extension", "/a/b/image.png", "", "/a/b/image_resized.png"},
		{"format replaces extension", "/a/b/image.jpg", FormatWebP, "/a/b/image_resized.webp"},
		{"last dot splits stem", "/a/b/archive.tar.gz", Format("zip"), "/a/b/archive.tar_resized.zip"},
		{"no extension", "/a/b/noext", FormatSame, "/a/b/noext_resized"},
		{"dot in directory", "/a/b.c/noext", FormatSame, "/a/b.c/noext_resized"},
		{"dotfile has no extension", "/a/b/.hidden", FormatSame, "/a/b/.hidden_resized"},
		{"dotfile with extension", "/a/b/.cover.png", FormatSame, "/a/b/.cover_resized.png"},
		{"dotfile with format", "/a/b/.hidden", FormatJPG, "/a/b/.hidden_resized.jpg"},
		{"relative path", "photo.jpg", FormatSame, "photo_resized.jpg"},
		{"relative dir", "imgs/photo.JPG", FormatPNG, "imgs/photo_resized.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultOutputPath(tt.path, tt.format))
		})
	}
}

func TestIsSupportedImage(t *testing.T) {
	assert.True(t, IsSupportedImage("a.jpg"))
	assert.True(t, IsSupportedImage("a.JPEG"))
	assert.True(t, IsSupportedImage("/x/y/a.Png"))
	assert.True(t, IsSupportedImage("a.webp"))
	assert.False(t, IsSupportedImage("a.gif"))
	assert.False(t, IsSupportedImage("a"))
	assert.False(t, IsSupportedImage("jpg"))
}

func TestSizePresets(t *testing.T) {
	presets := SizePresets()
	assert.Contains(t, presets, "1MB")
	for _, p := range presets {
		assert.True(t, IsValidTargetSize(p), "preset %q must be a valid size", p)
	}
}
