// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, logging, recovery, and correlation ID propagation. Its
// error codec is the single boundary where application errors are turned into
// responses: the classification picks the status code, the context record
// enriches the body, and only unclassified errors are logged.
package pkgrouter
