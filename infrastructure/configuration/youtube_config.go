package configuration

import (
	"os"
	"strings"
)

// YouTubeConfig is the resolved outbound API configuration.
type YouTubeConfig struct {
	APIKey     string
	ChannelID  string
	MaxResults int64
}

// GetYouTubeConfig resolves the YouTube settings from JSON config with
// environment variable fallback. BERTA_YOUTUBE_API_KEY is honored for
// compatibility with older deployments.
func GetYouTubeConfig() *YouTubeConfig {
	apiKey := getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", "")
	if apiKey == "" {
		apiKey = os.Getenv("BERTA_YOUTUBE_API_KEY")
	}

	cfg := &YouTubeConfig{
		APIKey:     apiKey,
		ChannelID:  getConfigValue(C.YouTube.ChannelID, "YOUTUBE_CHANNEL_ID", ""),
		MaxResults: C.YouTube.MaxResults,
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > 50 {
		// 50 is the API's page-size ceiling
		cfg.MaxResults = 50
	}
	return cfg
}

// getConfigValue gets value from environment first, then config, then default.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
