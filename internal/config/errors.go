package config

import "errors"

var (
	// ErrReadingFile is returned when the YAML config file cannot be read or decoded
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a loaded value is out of range
	ErrInvalidConfig = errors.New("invalid config")
)
