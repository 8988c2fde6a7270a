package client

import "errors"

// ErrNotWired is returned by [NewApp] when a dependency is missing.
var ErrNotWired = errors.New("client app is missing services or ui")
