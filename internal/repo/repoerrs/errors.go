package repoerrs

import "errors"

var (
	ErrRelationMissing = errors.New("relation does not exist")
	ErrBadStatement    = errors.New("malformed statement")
)
