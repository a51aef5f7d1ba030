// Package handler is the HTTP layer between the router and the services.
//
// Every endpoint goes through Handle: the payload is bound and validated,
// the service is called, and the result is written as JSON. Failures are
// returned as errors and rendered by the global error handler.
package handler
