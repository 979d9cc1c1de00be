// Package repository implements persistence for users and greetings on top
// of the document store. This file defines sentinel errors shared by the
// repositories so that higher layers can distinguish "the document is not
// there" from "the store failed". Handlers translate ErrNotFound into an
// HTTP 404 response; every other error propagates to the generic error
// handler.
package repository

import "errors"

// ErrNotFound is returned when a lookup by id (or by token) matches no
// document. It is a normal outcome, not a store failure.
var ErrNotFound = errors.New("not found")
