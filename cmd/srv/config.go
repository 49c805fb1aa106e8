package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/virality-gg/backend/config"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// loadConfig reads the configuration from the environment. When CONFIG_FILE
// points at a toml file, its values override the environment.
func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "8080"),
			Cert: getEnv("SERVER_CERT", ""),
			Key:  getEnv("SERVER_KEY", ""),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "virality"),
			User:     getEnv("MYSQL_USER", "virality"),
			Password: getEnv("MYSQL_PASSWORD", ""),
		},
		Discord: config.DiscordConfigs{
			PublicKey:     getEnv("DISCORD_PUBLIC_KEY", ""),
			ApplicationID: getEnv("DISCORD_APPLICATION_ID", ""),
		},
		App: config.AppConfigs{
			SiteURL:          getEnv("SITE_URL", "https://virality.gg"),
			LeaderboardLimit: 10,
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, s.configs); err != nil {
			panic(err)
		}
	}
}
