package constants

import "errors"

// Configuration errors.
var (
	ErrTokenRequired   = errors.New("GITLAB_PERSONAL_ACCESS_TOKEN is required")
	ErrInvalidAPIURL   = errors.New("GITLAB_API_URL is not a valid URL")
	ErrInvalidPort     = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidTimeout  = errors.New("GITLAB_HTTP_TIMEOUT must be a positive duration")
	ErrConfigInvalid   = errors.New("configuration is invalid")
	ErrConnectionCheck = errors.New("connection check failed")
)

// Command errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
	ErrEmptyToken          = errors.New("token must not be empty")
	ErrInvalidArgsJSON     = errors.New("--args must be a JSON object")
)
