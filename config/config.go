package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	SSO_ISSUER_URL        string
	SSO_CLIENT_ID         string
	SSO_CLIENT_SECRET     string
	SSO_REDIRECT_URL      string
	SSO_FRONTEND_REDIRECT string

	DISTANCE_ELLIPSOID string
	ROOM_USE_MAP       bool
)

// Built-in fallbacks for the room sharing display modes, used when no
// ROOM_SHARING_MODE_<n> override is configured for that slot.
var defaultRoomSharingModes = []string{
	"Show as used|0|1|86|1020",
	"Show all the time|0|6|0|288",
	"Workdays × daytime|0|5|90|1230",
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	SSO_ISSUER_URL = getEnv("SSO_ISSUER_URL", "")
	SSO_CLIENT_ID = getEnv("SSO_CLIENT_ID", "")
	SSO_CLIENT_SECRET = getEnv("SSO_CLIENT_SECRET", "")
	SSO_REDIRECT_URL = getEnv("SSO_REDIRECT_URL", "")
	SSO_FRONTEND_REDIRECT = getEnv("SSO_FRONTEND_REDIRECT", "")

	DISTANCE_ELLIPSOID = getEnv("DISTANCE_ELLIPSOID", "LEGACY")
	ROOM_USE_MAP = getEnv("ROOM_USE_MAP", "false") == "true"
}

// RoomSharingModes returns the configured room sharing display modes in
// order. Slot i is read from ROOM_SHARING_MODE_<i+1>, falling back to the
// built-in default for that slot; the first blank entry ends the list.
func RoomSharingModes() []string {
	var modes []string
	for i := 0; ; i++ {
		fallback := ""
		if i < len(defaultRoomSharingModes) {
			fallback = defaultRoomSharingModes[i]
		}
		mode := getEnv(fmt.Sprintf("ROOM_SHARING_MODE_%d", i+1), fallback)
		if mode == "" {
			break
		}
		modes = append(modes, mode)
	}
	return modes
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
