package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer ServerConfigs   `toml:"api_server"`
	Database  DatabaseConfigs `toml:"database"`
	Discord   DiscordConfigs  `toml:"discord"`
	App       AppConfigs      `toml:"app"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type DiscordConfigs struct {
	// PublicKey is the hex-encoded ed25519 application public key used to
	// authenticate interaction webhooks.
	PublicKey     string `toml:"public_key"`
	ApplicationID string `toml:"application_id"`
}

func (d *DiscordConfigs) DecodePublicKey() (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(d.PublicKey)
	if err != nil {
		return nil, err
	}

	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length %d", len(key))
	}

	return ed25519.PublicKey(key), nil
}

type AppConfigs struct {
	SiteURL          string `toml:"site_url"`
	LeaderboardLimit int    `toml:"leaderboard_limit"`
}
