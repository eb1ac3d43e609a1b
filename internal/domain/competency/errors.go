package competency

import "errors"

var (
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrCompetencyNotFound = errors.New("competency not found")
)
