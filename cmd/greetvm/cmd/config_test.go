// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	require := require.New(t)

	c, err := LoadConfig("")
	require.NoError(err)
	require.Equal("info", c.LogLevel)
	require.Equal("127.0.0.1", c.HTTPHost)
	require.Equal(9766, c.HTTPPort)
}

func TestLoadConfigOverlay(t *testing.T) {
	require := require.New(t)

	p := path.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(p, []byte("logLevel: debug\nhttpPort: 8080\n"), 0o600))

	c, err := LoadConfig(p)
	require.NoError(err)
	require.Equal("debug", c.LogLevel)
	require.Equal(8080, c.HTTPPort)
	// unset fields keep defaults
	require.Equal("127.0.0.1", c.HTTPHost)
}

func TestLoadConfigMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := LoadConfig(path.Join(t.TempDir(), "nope.yaml"))
	require.Error(err)
}
