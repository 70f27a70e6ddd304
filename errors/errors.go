package errors

import "fmt"

var (
	ErrBackendUnreachable = fmt.Errorf("analysis service unreachable")
	ErrBackendRejected    = fmt.Errorf("analysis service rejected the request")
	ErrInvalidCredentials = fmt.Errorf("incorrect email or password")
	ErrSessionNotFound    = fmt.Errorf("session not found")
	ErrUploadInFlight     = fmt.Errorf("an upload is already being processed")
	ErrNotAnImage         = fmt.Errorf("file is not a supported image")
	ErrFileTooLarge       = fmt.Errorf("file exceeds the maximum upload size")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
)
