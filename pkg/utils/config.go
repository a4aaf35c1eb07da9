package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("JOBFINDER_JWT_SECRET")
	if secret == "" {
		// dev default (change for production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("JOBFINDER_JWT_ISSUER")
	if issuer == "" {
		issuer = "jobfinder"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("JOBFINDER_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

type ServerConfig struct {
	Addr        string
	FrontendURL string
	UploadDir   string
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("JOBFINDER_ADDR")
	if addr == "" {
		addr = ":3100"
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	uploads := os.Getenv("JOBFINDER_UPLOAD_DIR")
	if uploads == "" {
		uploads = "uploads"
	}

	return ServerConfig{
		Addr:        addr,
		FrontendURL: frontend,
		UploadDir:   uploads,
	}
}

// RapidAPIKey returns the credential for the key-gated JSearch source.
// Empty means that source is a permanent no-op, which is fine.
func RapidAPIKey() string {
	return os.Getenv("RAPIDAPI_KEY")
}
