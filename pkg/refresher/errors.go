package refresher

import "errors"

var (
	ErrManagerClosed = errors.New("refresher manager is closed")
	ErrEmptyEntryID  = errors.New("entry id must not be empty")
	ErrNilCallback   = errors.New("callback must not be nil")
)
