package domain

import "errors"

var (
	ErrNotFound           = errors.New("recording not found")
	ErrEncoderUnavailable = errors.New("encoder unavailable")
	ErrDuplicateURL       = errors.New("url is already being recorded")
	ErrDuplicateID        = errors.New("recording id is already in use")
	ErrNavigationFailed   = errors.New("page navigation failed")
	ErrLaunchFailed       = errors.New("recording launch failed")
)
