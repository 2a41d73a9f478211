package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanaql/hanaql/internal/core/domain"
)

func TestProbeConnection_Success(t *testing.T) {
	db := &stubDB{
		info: &domain.ServerInfo{
			DatabaseName: "H00",
			Host:         "hana-host",
			Version:      "4.00.000.00.1700000000",
			Usage:        "TEST",
			StartTime:    "2026-01-02 03:04:05",
		},
	}

	var out strings.Builder
	err := probeConnection(context.Background(), db, &out, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, db.connectCalls)
	assert.Equal(t, 1, db.pingCalls)
	assert.Equal(t, 1, db.serverInfoCalls)
	assert.Equal(t, 1, db.closeCalls)
	assert.Contains(t, out.String(), "Connection successful.")
	assert.Contains(t, out.String(), "Database:   H00")
	assert.Contains(t, out.String(), "Version:    4.00.000.00.1700000000")
}

func TestProbeConnection_ConnectFailure(t *testing.T) {
	db := &stubDB{connectErr: &domain.ConnectionError{Err: errors.New("authentication failed")}}

	var out strings.Builder
	err := probeConnection(context.Background(), db, &out, zerolog.Nop())

	require.Error(t, err)
	var connErr *domain.ConnectionError
	assert.True(t, errors.As(err, &connErr))

	// Nothing past the failed connect ran, and the session was still
	// released exactly once.
	assert.Equal(t, 0, db.pingCalls)
	assert.Equal(t, 0, db.serverInfoCalls)
	assert.Equal(t, 1, db.closeCalls)
	assert.Empty(t, out.String())
}

func TestProbeConnection_PingFailure(t *testing.T) {
	db := &stubDB{pingErr: errors.New("session expired")}

	var out strings.Builder
	err := probeConnection(context.Background(), db, &out, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not alive")
	assert.Equal(t, 0, db.serverInfoCalls)
	assert.Equal(t, 1, db.closeCalls)
}

func TestProbeConnection_ServerInfoFailure(t *testing.T) {
	db := &stubDB{serverInfoErr: errors.New("insufficient privilege: M_DATABASE")}

	var out strings.Builder
	err := probeConnection(context.Background(), db, &out, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server info")
	assert.Equal(t, 1, db.closeCalls)
}
