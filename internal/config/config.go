package config

import (
	"os"
	"strings"
)

const defaultPort = "3000"

type Config struct {
	Port           string
	LogLevel       string
	AllowedOrigins []string
}

func New() *Config {
	return &Config{
		Port:           getPort(os.Getenv("PORT")),
		LogLevel:       os.Getenv("LOGLEVEL"),
		AllowedOrigins: getAllowedOrigins(os.Getenv("ALLOWEDORIGINS")),
	}
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getPort(port string) string {
	if port == "" {
		return defaultPort
	}
	return port
}

func getAllowedOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
