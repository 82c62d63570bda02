package utils

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DomainName string
	// WSAllowedOrigins is the comma-separated origin pattern list for
	// WebSocket upgrades. Defaults to "*" for local development.
	WSAllowedOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	origins := []string{"*"}
	if raw := os.Getenv("WS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		DomainName:       os.Getenv("DOMAIN_NAME"),
		WSAllowedOrigins: origins,
	}
}
