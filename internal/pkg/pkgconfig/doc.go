// Package pkgconfig reads service configuration.
//
// Callers depend on the Config interface; the Viper implementation layers
// built-in Defaults, an optional YAML file and CORPUSEDITOR_* environment
// variables (in increasing precedence). Binary values are base64 decoded.
package pkgconfig
