package employee

import "errors"

var (
	ErrIncompleteCompetencies = errors.New("please complete all competency selections")
	ErrDuplicateCompetencies  = errors.New("each competency can only be selected once")
	ErrRowOutOfRange          = errors.New("competency row out of range")
)
