// Package pkgrouter wraps HTTP routing and common middleware used by the
// service.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, logging, recovery and correlation ID
// propagation. Requests that match no registered endpoint go to the handler
// set with NotFound, which is where page navigation is served.
package pkgrouter
