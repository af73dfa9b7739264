package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no transport handlers are configured")
