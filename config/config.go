package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var JWT_KEY []byte

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("File .env tidak ditemukan, memakai environment proses")
	}

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal().Msg("JWT_KEY must be set in .env file")
	}

	JWT_KEY = []byte(key)
}
