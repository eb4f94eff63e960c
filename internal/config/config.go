package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits the comma separated origin list
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The deployment mode flag
// (Env) controls cookie attributes and log formatting; the store and
// signing secret are required, everything else has a sensible
// default.
type Config struct {
	Env            string   // application environment ("dev", "prod")
	Port           string   // HTTP port to listen on
	MongoURI       string   // MongoDB connection string
	DBName         string   // database holding rooms/bookings/reviews
	JWTSecret      string   // secret used to sign session tokens
	TokenTTLDays   int      // session token time-to-live in days
	AllowedOrigins []string // origins allowed for credentialed CORS
	QueueURL       string   // AMQP broker URL; empty disables events
	ConsumerOn     bool     // run the booking event consumer in-process
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),                  // environment (dev/prod)
		Port:           envStr("APP_PORT", "5000"),       // port to bind the HTTP server
		MongoURI:       must("MONGO_URI"),                // store connection string
		DBName:         envStr("DB_NAME", "HotelDB"),     // database name
		JWTSecret:      must("JWT_SECRET"),               // session token signing secret
		TokenTTLDays:   envInt("TOKEN_TTL_DAYS", 250),    // long-lived session window
		AllowedOrigins: origins("ALLOWED_ORIGINS"),       // CORS allow-list
		QueueURL:       os.Getenv("AMQP_URL"),            // optional event broker
		ConsumerOn:     envBool("QUEUE_CONSUMER_ENABLED", false),
	}
}

// IsProd reports whether the deployment mode is production.  Cookies
// get Secure and SameSite=None only in this mode.
func (c Config) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}

// origins parses a comma separated origin list, trimming whitespace
// and dropping empty entries.
func origins(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}
