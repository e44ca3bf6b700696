package plan

import "errors"

// ErrAlreadySeeded means the default plan was generated for the case before.
var ErrAlreadySeeded = errors.New("plan already seeded for case")
