package services

import "errors"

var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoAPIKey         = errors.New("no API key configured for user")
)
