package repo

import "errors"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrVoteNotFound    = errors.New("vote not found")
)
