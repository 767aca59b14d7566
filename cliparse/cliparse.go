package cliparse

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nguyennhimbth/EVMSimulator/models"
)

// Audit backend identifiers
const (
	AuditBackendFile   = "file"
	AuditBackendSQLite = "sqlite"
)

type Config struct {
	DataDir      string `toml:"data_dir"`
	AuditBackend string `toml:"audit_backend"` // "file" or "sqlite"
	AuditPath    string `toml:"audit_path"`

	// DefaultAdminPassword is only used to seed the credential file on
	// first run; it has no effect once a credential exists.
	DefaultAdminPassword string `toml:"default_admin_password"`
}

// ParseFlags resolves configuration with precedence:
// flags > TOML config file (-config) > environment > defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var configPath string

	fs := flag.NewFlagSet("evmsim", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "data", "", "Data directory for state, credential and audit files")
	fs.StringVar(&cfg.AuditBackend, "audit", "", "Audit backend: file or sqlite")
	fs.StringVar(&cfg.AuditPath, "audit-path", "", "Audit log location (overrides the default under -data)")
	fs.StringVar(&configPath, "config", "", "Optional TOML config file")

	// First-run secret (prefer env, allow CLI for dev)
	fs.StringVar(&cfg.DefaultAdminPassword, "default-password", "", "First-run admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fill blanks from the config file, if one was given
	if configPath != "" {
		var fileCfg Config
		if _, err := toml.DecodeFile(configPath, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		fillBlank(&cfg, fileCfg)
	}

	// Fall back to environment variables
	fillBlank(&cfg, Config{
		DataDir:              os.Getenv("VOTING_DATA_DIR"),
		AuditBackend:         os.Getenv("VOTING_AUDIT_BACKEND"),
		AuditPath:            os.Getenv("VOTING_AUDIT_PATH"),
		DefaultAdminPassword: os.Getenv("VOTING_DEFAULT_PASSWORD"),
	})

	// Defaults
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.AuditBackend == "" {
		cfg.AuditBackend = AuditBackendFile
	}
	if cfg.AuditBackend != AuditBackendFile && cfg.AuditBackend != AuditBackendSQLite {
		return Config{}, fmt.Errorf("invalid audit backend %q (use file or sqlite)", cfg.AuditBackend)
	}
	if cfg.AuditPath == "" {
		if cfg.AuditBackend == AuditBackendSQLite {
			cfg.AuditPath = filepath.Join(cfg.DataDir, "voting_audit.db")
		} else {
			cfg.AuditPath = filepath.Join(cfg.DataDir, models.DefaultAuditFile)
		}
	}

	return cfg, nil
}

// fillBlank copies src fields into dst fields that are still empty.
func fillBlank(dst *Config, src Config) {
	if dst.DataDir == "" {
		dst.DataDir = src.DataDir
	}
	if dst.AuditBackend == "" {
		dst.AuditBackend = src.AuditBackend
	}
	if dst.AuditPath == "" {
		dst.AuditPath = src.AuditPath
	}
	if dst.DefaultAdminPassword == "" {
		dst.DefaultAdminPassword = src.DefaultAdminPassword
	}
}
