package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings splits the route-protection list

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values. It is built once in main
// and passed into every constructor that needs it; no package keeps its own
// copy of a connection string or storage path.
type Config struct {
	Env          string   // application environment (e.g. "dev", "prod")
	Port         string   // HTTP port to listen on
	MongoURI     string   // document store connection string
	DBName       string   // database name within the store
	GreetingDir  string   // directory where transcoded greetings are stored
	UploadTmpDir string   // spool directory for multipart uploads
	AuthProtect  []string // route-group names that require a bearer token
}

// Load reads configuration values from environment variables and returns a
// Config. A .env file in the working directory is applied first if one
// exists. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // a missing .env is fine; real env vars win anyway

	return Config{
		Env:          must("APP_ENV"),      // environment (dev/test/prod)
		Port:         must("APP_PORT"),     // port to bind the HTTP server
		MongoURI:     must("MONGO_URI"),    // e.g. mongodb://localhost/voice-greetings
		DBName:       must("DB_NAME"),      // database name
		GreetingDir:  must("GREETING_DIR"), // transcoded greeting storage
		UploadTmpDir: orDefault("UPLOAD_TMP_DIR", os.TempDir()),
		AuthProtect:  parseProtect(os.Getenv("AUTH_PROTECT")),
	}
}

// RequiresAuth reports whether the named route group is listed for
// bearer-token protection.
func (c Config) RequiresAuth(group string) bool {
	for _, g := range c.AuthProtect {
		if g == group {
			return true
		}
	}
	return false
}

// parseProtect splits a comma-separated list of route-group names. An empty
// value falls back to protecting only the "api" group, leaving the user and
// greeting groups open.
func parseProtect(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		raw = "api"
	}
	var groups []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			groups = append(groups, p)
		}
	}
	return groups
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// orDefault retrieves an optional environment variable, falling back to def.
func orDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
