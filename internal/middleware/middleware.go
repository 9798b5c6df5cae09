// Package middleware holds the HTTP middleware stack: request
// correlation IDs, request-scoped loggers, CORS, panic recovery,
// secure headers, optional New Relic tracing, and the global error
// handler every failed request funnels through.
package middleware
