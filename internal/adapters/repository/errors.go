package repository

import "errors"

// ErrDuplicateID is returned by Create when the assessment id is already taken.
var ErrDuplicateID = errors.New("assessment id already exists")
