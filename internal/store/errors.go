package store

import (
	"time"

	"murmur/internal/api"
)

const (
	defaultAlertDuration = 6 * time.Second
	loginAlertDuration   = 8 * time.Second

	genericRetryMessage = "An error occurred, please try again."
)

func asAPIError(err error) (*api.Error, bool) {
	return api.AsError(err)
}
