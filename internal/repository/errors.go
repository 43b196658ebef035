package repository

import "errors"

var ErrUnsupportedDriver = errors.New("unsupported store driver")
