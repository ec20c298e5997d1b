package chart

import "errors"

var (
	ErrMissingField  = errors.New("missing field name")
	ErrMissingTarget = errors.New("missing render target")
	ErrUnknownChart  = errors.New("unknown chart")
)
