package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuciusCaesar/D360-Client/internal/config"
)

func withGlobals(t *testing.T, inst, f string) {
	t.Helper()
	prevCfg, prevInst, prevFormat := cfg, instance, format
	t.Cleanup(func() { cfg, instance, format = prevCfg, prevInst, prevFormat })
	cfg = &config.Config{
		Source:      config.Endpoint{URL: "https://src.example.com"},
		Destination: config.Endpoint{URL: "https://dst.example.com/"},
	}
	instance, format = inst, f
}

func TestSelectedClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	withGlobals(t, instanceDestination, "table")
	c, err := selectedClient(logger)
	require.NoError(t, err)
	assert.Equal(t, "https://dst.example.com/api/v2", c.BaseURL())

	instance = "staging"
	_, err = selectedClient(logger)
	assert.ErrorContains(t, err, "unknown instance")
}

func TestWriteListing(t *testing.T) {
	rows := [][]string{{"Application", "u1"}}
	v := []map[string]string{{"Name": "Application"}}

	withGlobals(t, instanceSource, "json")
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, writeListing(cmd, v, []string{"Name", "UID"}, rows))
	assert.JSONEq(t, `[{"Name":"Application"}]`, buf.String())

	buf.Reset()
	format = "table"
	require.NoError(t, writeListing(cmd, v, []string{"Name", "UID"}, rows))
	assert.Contains(t, buf.String(), "u1")

	format = "xml"
	assert.Error(t, writeListing(cmd, v, []string{"Name"}, rows))
}

func TestNewHTTPServerAllowsSlowDiffs(t *testing.T) {
	srv := newHTTPServer("127.0.0.1:0", http.NotFoundHandler())
	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.Equal(t, diffWriteTimeout, srv.WriteTimeout)
	assert.Less(t, srv.ReadTimeout, srv.WriteTimeout)
}
