package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyRequestID CtxKey = "RequestID"
)
