package config

import (
	"strings"
	"testing"
)

func TestBuildMySQLDSN(t *testing.T) {
	t.Setenv("PRIMARY_DB_DSN", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "postly")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "postly_db")
	t.Setenv("DB_CHARSET", "")

	dsn := buildMySQLDSN()
	if !strings.HasPrefix(dsn, "postly:pw@tcp(db.internal:3307)/postly_db?") {
		t.Fatalf("unexpected dsn shape: %s", dsn)
	}
	// Ownership checks read RowsAffected; the driver must count matched rows,
	// not changed rows, or re-submitting identical values reads as a miss.
	if !strings.Contains(dsn, "clientFoundRows=True") {
		t.Fatalf("dsn missing clientFoundRows: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=True") {
		t.Fatalf("dsn missing parseTime: %s", dsn)
	}
}

func TestBuildMySQLDSNExplicitOverride(t *testing.T) {
	t.Setenv("PRIMARY_DB_DSN", "user:pw@tcp(h:3306)/db")

	if dsn := buildMySQLDSN(); dsn != "user:pw@tcp(h:3306)/db" {
		t.Fatalf("explicit DSN not honored: %s", dsn)
	}
}
