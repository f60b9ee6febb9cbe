package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectInUse    = errors.New("project still has assigned users")
)
