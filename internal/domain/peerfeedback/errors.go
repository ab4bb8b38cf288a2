package peerfeedback

import "errors"

var (
	ErrAlreadySubmitted = errors.New("feedback already submitted for this employee and quarter")
	ErrRequestNotFound  = errors.New("peer feedback request not found")
)
