// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging); AppConfig is everything
// specific to this service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Default admin seeded into the admins collection on startup.
	AdminEmail    string
	AdminPassword string

	// ReconcileOnStartup runs the unbroadcast sweep before the server
	// starts listening, covering accepted requests whose alert was lost
	// to a crash between the accept and the broadcast.
	ReconcileOnStartup bool
}
