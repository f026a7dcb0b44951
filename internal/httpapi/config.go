package httpapi

import (
	"github.com/go-chi/cors"

	"notifyd/internal/config"
)

// maxBodyBytes caps the POST /publish body; larger requests get 413.
var maxBodyBytes int64 = config.DefaultMaxBodyBytes

// SetMaxBodyBytes sets the /publish body cap. n <= 0 restores the default.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
		return
	}
	maxBodyBytes = n
}

// CORS is off unless the daemon is started with cors_enabled, so browser
// dashboards on another origin can call /publish and /topics.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions sets the cross-origin policy used by the next NewMux call.
// The slices are copied.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
		MaxAge:         300,
	}
}
