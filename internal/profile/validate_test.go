package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImageFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"profile.png", true},
		{"scan.JPG", true},
		{"photo.jpeg", true},
		{"shot.webp", true},
		{"pic.heic", true},
		{"pic.heif", true},
		{"report.pdf", false},
		{"notes.txt", false},
		{"archive.png.zip", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedImageFile(tt.filename))
		})
	}
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "jpeg", imageFormat("photo.jpg"))
	assert.Equal(t, "jpeg", imageFormat("photo.JPG"))
	assert.Equal(t, "jpeg", imageFormat("photo.jpeg"))
	assert.Equal(t, "png", imageFormat("photo.png"))
	assert.Equal(t, "webp", imageFormat("photo.webp"))
}
