// Package handler is the HTTP entry point after the router.
//
// It binds and validates request payloads, calls the appropriate
// service, and writes the JSON response. It acts as the interface
// between the HTTP request and the business logic.
package handler
