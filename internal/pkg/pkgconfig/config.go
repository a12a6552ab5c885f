package pkgconfig

import "io"

// Config exposes typed accessors over the loaded configuration.
//
// Implementations decide where values come from (file, environment, ...);
// callers only depend on this interface.
type Config interface {
	io.Closer

	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
}
