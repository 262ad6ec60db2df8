package models

import (
	"errors"
)

var (
	ErrStorageUnavailable = errors.New("the transaction storage is currently unavailable, please try again later")
	ErrResourceNotFound   = errors.New("there is no")
)
