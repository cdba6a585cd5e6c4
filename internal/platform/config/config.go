package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the environment configuration for the gateway. Credential
// presence is not validated here; clients check the values they need per
// call so a partially configured deployment still serves the endpoints it
// can.
type Config struct {
	Port string

	// OneSignal push provider.
	OneSignalAppID   string
	OneSignalRESTKey string

	// ntfy.sh alert webhook.
	NtfyBaseURL string
	NtfyTopic   string

	// Remote socket bridge relaying order-status events.
	SocketBridgeURL string

	// Firebase project backing auth and the profile store. Empty disables
	// Firebase and falls back to in-memory mocks for local development.
	FirebaseProjectID            string
	GoogleApplicationCredentials string
}

// Load reads configuration from the environment, merging in a .env file when
// one is present. Missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                         getenv("PORT", "8080"),
		OneSignalAppID:               os.Getenv("ONESIGNAL_APP_ID"),
		OneSignalRESTKey:             os.Getenv("ONESIGNAL_REST_API_KEY"),
		NtfyBaseURL:                  getenv("NTFY_BASE_URL", "https://ntfy.sh"),
		NtfyTopic:                    os.Getenv("NTFY_TOPIC"),
		SocketBridgeURL:              os.Getenv("SOCKET_BRIDGE_URL"),
		FirebaseProjectID:            os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
