package types

import "github.com/m-mizutani/goerr/v2"

// ErrRecordNotFound is returned by repository backends when the requested
// record does not exist. Callers classify it with errors.Is regardless of
// which backend produced it.
var ErrRecordNotFound = goerr.New("record not found")
