package bids

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectIDRequired = errors.New("project_id is required")
)
