// file: config/config.go
package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from the environment
// with the CTF_ prefix (CTF_DSN, CTF_ORIGIN, ...).
type Config struct {
	ListenAddr string
	DSN        string
	RedisAddr  string

	// Origin is the external scheme+host used when building signed
	// URLs, e.g. "https://ctf.example.org".
	Origin string

	// SigningSecret keys the signed-URL and session tokens. When it is
	// not configured a random one is generated for this process only,
	// which invalidates outstanding links on restart.
	SigningSecret []byte
}

var C *Config

func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("CTF")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("dsn", "root:123456@tcp(localhost:3306)/flagcore?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("redis_addr", "")
	v.SetDefault("origin", "")

	cfg := &Config{
		ListenAddr: v.GetString("listen_addr"),
		DSN:        v.GetString("dsn"),
		RedisAddr:  v.GetString("redis_addr"),
		Origin:     v.GetString("origin"),
	}

	if secret := v.GetString("signing_secret"); secret != "" {
		cfg.SigningSecret = []byte(secret)
	} else {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("Failed to generate signing secret: %v", err)
		}
		cfg.SigningSecret = []byte(hex.EncodeToString(buf))
		log.Println("Warning: CTF_SIGNING_SECRET is not set, generated a random secret. Signed URLs will not survive a restart.")
	}

	C = cfg
	return cfg
}
