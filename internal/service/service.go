// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handlers, normalizes date/time
// representations to the storage wire format, and calls repository
// methods to interact with the data.
package service
