package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/laundry-service/internal/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRatesCheck(t *testing.T) {
	path := writeFile(t, `
iron_rate_per_kg: 6
tiers:
  - {service_type: wash, min_weight: 0, max_weight: 2, price_per_kg: 31}
  - {service_type: wash, min_weight: 2, max_weight: 50, price_per_kg: 27.5}
`)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rates", "check", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "SERVICE")
	assert.Contains(t, buf.String(), "27.5")
	assert.Contains(t, buf.String(), "iron add-on: 6 per kg")
}

func TestRatesCheckRejectsGaps(t *testing.T) {
	path := writeFile(t, `
tiers:
  - {service_type: wash, min_weight: 0, max_weight: 1, price_per_kg: 30}
  - {service_type: wash, min_weight: 2, max_weight: 3, price_per_kg: 28}
`)

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"rates", "check", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConfiguration)
	assert.Contains(t, err.Error(), "not contiguous")
}

func TestRatesCheckNeedsFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"rates", "check"})

	assert.Error(t, cmd.Execute())
}

func TestAdminCreateRequiresCredentials(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"admin", "create", "--login", "root"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
