package memory

import "errors"

var (
	errDuplicateKey    = errors.New("duplicate key")
	errMissingProposal = errors.New("proposal row missing")
)
