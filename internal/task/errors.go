package task

import "errors"

var ErrInvalidInput = errors.New("'title' must be a string and 'completed' be a boolean")
