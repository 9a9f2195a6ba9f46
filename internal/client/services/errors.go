package services

import "errors"

var (
	ErrLoginRequired  = errors.New("please login first")
	ErrAdminRequired  = errors.New("admin access required")
	ErrEditorRequired = errors.New("editor access required")
	ErrEmptyQuery     = errors.New("search query is required")
	ErrEmptyComment   = errors.New("comment content is required")
	ErrInvalidID      = errors.New("invalid id")
	ErrNothingToSave  = errors.New("nothing to update")
)
