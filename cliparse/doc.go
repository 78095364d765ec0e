// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminIdentity: Administrator of a newly created election (required)
  - IdentityKeySalt: Secret for identity key HMAC (required)
  - EnvFile: dotenv file (default: .env)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-admin      Administrator identity
	-key-salt   Identity key salt
	-env-file   dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ADMIN_IDENTITY    → -admin
	IDENTITY_KEY_SALT → -key-salt

CLI flags take precedence over environment variables, which take precedence
over the dotenv file. A missing dotenv file is ignored.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_IDENTITY must be provided
  - IDENTITY_KEY_SALT must be provided
*/
package cliparse
