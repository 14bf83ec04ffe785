package service

import "errors"

var (
	// ErrQuizNotFound is returned when a quiz slug resolves to nothing.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrSlugTaken is returned by admin quiz creation on a duplicate slug.
	ErrSlugTaken = errors.New("quiz slug already exists")
)
