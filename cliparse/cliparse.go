package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/auth"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	AdminIdentity   string
	ElectionID      string
	IdentityKeySalt string
	EnvFile         string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Election config
	fs.StringVar(&cfg.AdminIdentity, "admin", "", "Administrator identity")
	fs.StringVar(&cfg.ElectionID, "election", "", "Election to serve (default: latest, created if none)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentityKeySalt, "key-salt", "", "Identity key salt (prefer env)")

	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.AdminIdentity == "" {
		cfg.AdminIdentity = os.Getenv("ADMIN_IDENTITY")
	}
	if cfg.AdminIdentity == "" {
		return Config{}, errors.New("admin identity required (use -admin or ADMIN_IDENTITY env)")
	}
	admin, err := auth.NormalizeIdentity(cfg.AdminIdentity)
	if err != nil {
		return Config{}, fmt.Errorf("invalid admin identity %q: %w", cfg.AdminIdentity, err)
	}
	cfg.AdminIdentity = admin

	if cfg.ElectionID == "" {
		cfg.ElectionID = os.Getenv("ELECTION_ID")
	}

	// Secrets - MUST be provided
	if cfg.IdentityKeySalt == "" {
		cfg.IdentityKeySalt = os.Getenv("IDENTITY_KEY_SALT")
	}
	if cfg.IdentityKeySalt == "" {
		return Config{}, errors.New("IDENTITY_KEY_SALT required")
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
