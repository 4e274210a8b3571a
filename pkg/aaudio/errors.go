package aaudio

import (
	"errors"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

// The three functions below are the only place native error codes are
// interpreted; calling components never re-map them. Every native code
// lands in exactly one generic bucket.

// buildStreamError maps a native failure during stream construction.
func buildStreamError(err error) error {
	var code platform.Error
	if !errors.As(err, &code) {
		return &audio.BackendError{Description: err.Error()}
	}
	switch code {
	case platform.ErrorDisconnected, platform.ErrorUnavailable:
		return audio.ErrDeviceNotAvailable
	case platform.ErrorNoFreeHandles:
		return audio.ErrStreamIDOverflow
	case platform.ErrorInvalidFormat, platform.ErrorInvalidRate:
		return audio.ErrStreamConfigNotSupported
	case platform.ErrorIllegalArgument:
		return audio.ErrInvalidArgument
	}
	return &audio.BackendError{Description: code.Description()}
}

// controlError maps a native failure from a start or pause request.
func controlError(err error) error {
	var code platform.Error
	if !errors.As(err, &code) {
		return &audio.BackendError{Description: err.Error()}
	}
	return streamError(code)
}

// streamError maps a native code reported for a running stream. This is
// the mapping behind the error-callback path, the only channel that can
// report device loss after a stream has started.
func streamError(code platform.Error) error {
	switch code {
	case platform.ErrorDisconnected, platform.ErrorUnavailable:
		return audio.ErrDeviceNotAvailable
	}
	return &audio.BackendError{Description: code.Description()}
}
