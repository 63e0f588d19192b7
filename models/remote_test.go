package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamaJaringanSSHUnikPerTunnel(t *testing.T) {
	a := namaJaringanSSH()
	b := namaJaringanSSH()

	assert.True(t, strings.HasPrefix(a, "mysql+ssh-"))
	assert.True(t, strings.HasPrefix(b, "mysql+ssh-"))
	// Dua tunnel yang hidup bersamaan tidak boleh berbagi dialer.
	assert.NotEqual(t, a, b)
}

func TestRemoteDBCloseMemanggilPenutup(t *testing.T) {
	ditutup := 0
	r := &RemoteDB{tutup: func() error {
		ditutup++
		return nil
	}}

	require.NoError(t, r.Close())
	assert.Equal(t, 1, ditutup)
}

func TestRemoteDBCloseTanpaPenutup(t *testing.T) {
	r := &RemoteDB{}
	assert.NoError(t, r.Close())
}

func TestConnectRemoteTanpaKredensial(t *testing.T) {
	_, err := ConnectRemote(RemoteConfig{})
	assert.Error(t, err)

	// Mode SSH tanpa kredensial database ditolak sebelum membuka tunnel.
	_, err = ConnectRemote(RemoteConfig{UseSSH: true, SSHHost: "contoh.go.id", SSHUser: "opr"})
	assert.Error(t, err)
}
