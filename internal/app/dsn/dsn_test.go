package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "portal")

	want := "host=localhost user=postgres password=secret dbname=portal port=5432 sslmode=disable"
	if got := FromEnv(); got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnv_NoHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	if got := FromEnv(); got != "" {
		t.Errorf("FromEnv() без DB_HOST = %q, want пустую строку", got)
	}
}
