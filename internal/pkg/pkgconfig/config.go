package pkgconfig

// Config is a read-only view over the application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}

// Defaults are the values used for keys missing from the config file.
//
//nolint:gochecknoglobals // read-only
var Defaults = map[string]any{
	"tz":                         "UTC",
	"log.level":                  "info",
	"server.address.http":        ":8080",
	"goroutine.max":              100,
	"modules.editor.enabled":     true,
	"editor.templates.dir":       "",
	"editor.layout.reuse_header": "X-Active-Layout",
	"metrics.enabled":            true,
}
