package repository

import "errors"

var ErrFailedToSelect = errors.New("failed to select records")
