package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

func TestMemoryNonceStore_Sequential(t *testing.T) {
	s := NewMemoryNonceStore()
	for want := uint64(1); want <= 3; want++ {
		got, err := s.GetAndIncrement("D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	other, _ := s.GetAndIncrement("DAnother")
	assert.Equal(t, uint64(1), other)
}

func TestMemoryNonceStore_Concurrent(t *testing.T) {
	s := NewMemoryNonceStore()
	var wg sync.WaitGroup
	seen := make(chan uint64, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, _ := s.GetAndIncrement("addr")
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool)
	for n := range seen {
		assert.False(t, unique[n], "nonce %d handed out twice", n)
		unique[n] = true
	}
	assert.Len(t, unique, 50)
}

func TestMemoryWalletStore(t *testing.T) {
	s := NewMemoryWalletStore()

	ok, err := s.HasWallets("ARK", "ark.devnet")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Add("ark", "ark.devnet", "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"))

	ok, _ = s.HasWallets("ARK", "ark.devnet")
	assert.True(t, ok)
	ok, _ = s.HasWallets("ARK", "ark.mainnet")
	assert.False(t, ok)

	assert.Error(t, s.Add("", "ark.devnet", "x"))
}

func TestMemoryDelegateRegistry(t *testing.T) {
	r := NewMemoryDelegateRegistry()
	ctx := context.Background()
	genesis := models.Delegate{
		Network:   "ark.devnet",
		Username:  "genesis_1",
		PublicKey: "03287bfebba4c7881a0509717e71b34b63f31e40021c321f89ae04f84be6d6ac37",
		Address:   "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib",
	}
	require.NoError(t, r.Add(genesis))

	d, err := r.FindByUsername(ctx, "ark.devnet", "genesis_1")
	require.NoError(t, err)
	assert.Equal(t, genesis, *d)

	d, err = r.FindByPublicKey(ctx, "ark.devnet", genesis.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "genesis_1", d.Username)

	_, err = r.FindByUsername(ctx, "ark.mainnet", "genesis_1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, r.Add(models.Delegate{Username: "no_network"}))
}

func TestMemoryDelegateRegistry_CanceledContext(t *testing.T) {
	r := NewMemoryDelegateRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.FindByPublicKey(ctx, "ark.devnet", "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryDelegateRegistry_LoadDelegatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delegates.toml")
	content := `
[[delegate]]
network = "ark.devnet"
username = "genesis_1"
public_key = "03287bfebba4c7881a0509717e71b34b63f31e40021c321f89ae04f84be6d6ac37"

[[delegate]]
network = "ark.devnet"
username = "resigned_1"
public_key = "02b3b1d5e4a5ef3e2a0e2ebf7e63e06eb37f5d3b1fd1e3fbb9b0e5ef4a2e4b0c11"
resigned = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r := NewMemoryDelegateRegistry()
	require.NoError(t, r.LoadDelegatesFile(path))

	d, err := r.FindByUsername(context.Background(), "ark.devnet", "resigned_1")
	require.NoError(t, err)
	assert.True(t, d.Resigned)

	assert.Error(t, r.LoadDelegatesFile(filepath.Join(t.TempDir(), "missing.toml")))
}
