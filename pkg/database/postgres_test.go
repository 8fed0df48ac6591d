package database

import "testing"

func TestConnString(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "paceline")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "paceline")
	t.Setenv("DB_SSL_MODE", "")

	want := "host=localhost port=5432 user=paceline password=secret dbname=paceline sslmode=disable"
	if got := connString(); got != want {
		t.Errorf("connString() = %q, want %q", got, want)
	}

	t.Setenv("DB_SSL_MODE", "require")
	want = "host=localhost port=5432 user=paceline password=secret dbname=paceline sslmode=require"
	if got := connString(); got != want {
		t.Errorf("connString() = %q, want %q", got, want)
	}
}

func TestMaxOpenConns(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	if got := maxOpenConns(); got != defaultMaxOpenConns {
		t.Errorf("maxOpenConns() = %d, want %d", got, defaultMaxOpenConns)
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	if got := maxOpenConns(); got != 50 {
		t.Errorf("maxOpenConns() = %d, want 50", got)
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	if got := maxOpenConns(); got != defaultMaxOpenConns {
		t.Errorf("maxOpenConns() = %d, want %d", got, defaultMaxOpenConns)
	}
}
