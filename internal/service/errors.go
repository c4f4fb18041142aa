package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("Invalid parameters")
	ErrRatingOutOfRange = errors.New("Rating must be between 1 and 5")
	ErrSongNotFound     = errors.New("Song not found")
	UnExpectedError     = errors.New("Unexpected server error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrRatingOutOfRange: BadRequest,
	ErrSongNotFound:     NotFound,
	UnExpectedError:     InternalServerError,
}
