package service

import "errors"

// Sentinel errors surfaced to the transport layer, which maps them to 404.
var (
	ErrSurveyNotFound   = errors.New("survey not found")
	ErrTemplateNotFound = errors.New("template not found")
)
