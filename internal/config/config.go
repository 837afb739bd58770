package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	JWTSecret     string
	GenAIEndpoint string
	GenAIAPIKey   string
}

const defaultGenAIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		log.Println("JWT_SECRET not set, using default key")
	}

	endpoint := os.Getenv("GENAI_API_URL")
	if endpoint == "" {
		endpoint = defaultGenAIEndpoint
	}

	return Config{
		Port:          port,
		JWTSecret:     jwtSecret,
		GenAIEndpoint: endpoint,
		GenAIAPIKey:   os.Getenv("GENAI_API_KEY"),
	}
}
