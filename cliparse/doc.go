// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags win over environment variables; environment variables win over
defaults.

Settings:

  - PORT (-p): server port (default: 3342)
  - DATABASE_URL (-d): connection string (required); a file: URL for sqlite,
    a postgres:// URL for postgres
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - SEED_FILE (-seed): optional YAML seed file applied after schema creation
*/
package cliparse
