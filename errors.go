package arbor

import "errors"

var (
	// ErrFrameOpen is returned by Frame.Open on a frame that is already open.
	ErrFrameOpen = errors.New("arbor: frame already open")
	// ErrFrameClosed is returned by operations that need an open frame.
	ErrFrameClosed = errors.New("arbor: frame is closed")
	// ErrNoPlatform is returned by Frame.Open when no platform is given.
	ErrNoPlatform = errors.New("arbor: nil platform")
	// ErrUnknownBehavior is returned when a description names a behavior
	// that was not registered.
	ErrUnknownBehavior = errors.New("arbor: unknown behavior")
	// ErrUnknownBitmap is returned when a description names a bitmap the
	// resources do not provide.
	ErrUnknownBitmap = errors.New("arbor: unknown bitmap")
)
