package workflow

import "errors"

var (
	ErrInvokeFailed = errors.New("model invocation failed")
	ErrStateInvalid = errors.New("workflow state invalid")
)
