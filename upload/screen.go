// Package upload screens a file before it is sent to the prediction
// endpoint. Screening fails fast on obviously wrong files; the backend
// remains the authority on whether the image is a usable brain MRI.
package upload

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"neuroview/errors"
)

// Screened is an accepted upload plus what the sniffer learned about it.
type Screened struct {
	Filename string
	MIME     string
	Size     int64
}

// Screen rejects empty, oversized, and non-image payloads. DICOM is
// accepted alongside regular image formats.
func Screen(filename string, data []byte, maxSize int64) (Screened, error) {
	if len(data) == 0 {
		return Screened{}, fmt.Errorf("%w: empty file", errors.ErrNotAnImage)
	}
	if int64(len(data)) > maxSize {
		return Screened{}, fmt.Errorf("%w: %d bytes (limit %d)", errors.ErrFileTooLarge, len(data), maxSize)
	}

	mtype := mimetype.Detect(data)
	if !isSupported(mtype) {
		return Screened{}, fmt.Errorf("%w: detected %s", errors.ErrNotAnImage, mtype.String())
	}

	return Screened{Filename: filename, MIME: mtype.String(), Size: int64(len(data))}, nil
}

func isSupported(mtype *mimetype.MIME) bool {
	return mtype.Is("application/dicom") || strings.HasPrefix(mtype.String(), "image/")
}
