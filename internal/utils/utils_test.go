package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationEnv(t *testing.T) {
	cases := map[string]time.Duration{
		"10":     10 * time.Second,
		"10s":    10 * time.Second,
		"5m":     5 * time.Minute,
		`"90s"`:  90 * time.Second,
		" '1h' ": time.Hour,
	}
	for in, want := range cases {
		got, err := ParseDurationEnv(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", `""`, "soon", "10 parsecs"} {
		_, err := ParseDurationEnv(bad)
		assert.Error(t, err, bad)
	}
}

func TestPGErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsPGUniqueViolation(unique))
	assert.False(t, IsPGForeignKeyViolation(unique))
	assert.True(t, IsPGForeignKeyViolation(fk))
	assert.False(t, IsPGUniqueViolation(fk))
	assert.False(t, IsPGUniqueViolation(nil))
	assert.False(t, IsPGForeignKeyViolation(assert.AnError))
}
