package upload

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"neuroview/errors"
)

const maxSize = 10 << 20

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestScreen_AcceptsPNG(t *testing.T) {
	req := require.New(t)

	screened, err := Screen("scan.png", pngBytes(t), maxSize)
	req.NoError(err)
	req.Equal("scan.png", screened.Filename)
	req.Equal("image/png", screened.MIME)
	req.NotZero(screened.Size)
}

func TestScreen_RejectsNonImage(t *testing.T) {
	req := require.New(t)

	_, err := Screen("notes.txt", []byte("definitely not an mri"), maxSize)
	req.ErrorIs(err, errors.ErrNotAnImage)
}

func TestScreen_RejectsEmpty(t *testing.T) {
	req := require.New(t)

	_, err := Screen("empty.png", nil, maxSize)
	req.ErrorIs(err, errors.ErrNotAnImage)
}

func TestScreen_RejectsOversized(t *testing.T) {
	req := require.New(t)

	_, err := Screen("scan.png", pngBytes(t), 4)
	req.ErrorIs(err, errors.ErrFileTooLarge)
}
