package image

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaxFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
	}{
		{input: "10MB", want: 10 * 1024 * 1024},
		{input: "512KB", want: 512 * 1024},
		{input: "1024B", want: 1024},
		{input: "5mb", want: 5 * 1024 * 1024},
		{input: " 2MB ", want: 2 * 1024 * 1024},
		// unparseable values fall back to 10MB
		{input: "garbage", want: 10 * 1024 * 1024},
		{input: "", want: 10 * 1024 * 1024},
		{input: "-5MB", want: 10 * 1024 * 1024},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseMaxFileSize(tt.input))
		})
	}
}

func TestValidateImageFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		size     int64
		wantErr  bool
	}{
		{name: "valid jpg", fileName: "cover.jpg", size: 1024, wantErr: false},
		{name: "valid png", fileName: "cover.png", size: 1024, wantErr: false},
		{name: "extension case insensitive", fileName: "cover.JPG", size: 1024, wantErr: false},
		{name: "empty file", fileName: "cover.jpg", size: 0, wantErr: true},
		{name: "no extension", fileName: "cover", size: 1024, wantErr: true},
		{name: "disallowed type", fileName: "cover.exe", size: 1024, wantErr: true},
		{name: "oversized", fileName: "cover.jpg", size: 100 * 1024 * 1024, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := &multipart.FileHeader{Filename: tt.fileName, Size: tt.size}
			err := ValidateImageFile(header)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerateObjectKey(t *testing.T) {
	t.Parallel()

	key := GenerateObjectKey("Cover Art.PNG")

	assert.True(t, strings.HasPrefix(key, "games/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, GenerateObjectKey("Cover Art.PNG"))
}
