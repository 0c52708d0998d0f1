// Package pkgerror defines the structured error type used across the
// application.
//
// An Error carries a user-facing message, a type and a code, and wraps the
// underlying cause so errors.Is and errors.As keep working. The code is mapped
// to an HTTP status code at the edge (handlers).
package pkgerror
