// Package errs defines the custom error types the API returns to clients.
//
// Every failed request is answered with the same JSON envelope
// (code, message, status, optional field errors) so clients never
// have to guess at the shape of an error response. The types here
// play nicely with Go's standard errors package.
package errs
