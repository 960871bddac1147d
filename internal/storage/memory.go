package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// MemoryNonceStore is an in-memory NonceStore.
type MemoryNonceStore struct {
	mu     sync.Mutex
	nonces map[string]uint64
}

func NewMemoryNonceStore() *MemoryNonceStore {
	return &MemoryNonceStore{nonces: make(map[string]uint64)}
}

func (s *MemoryNonceStore) GetAndIncrement(address string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.nonces[address] + 1
	s.nonces[address] = n
	return n, nil
}

type walletKey struct {
	coin    string
	network string
}

// MemoryWalletStore is an in-memory WalletStore.
type MemoryWalletStore struct {
	mu      sync.RWMutex
	wallets map[walletKey][]string
}

func NewMemoryWalletStore() *MemoryWalletStore {
	return &MemoryWalletStore{wallets: make(map[walletKey][]string)}
}

// Add registers a wallet address for coin on network.
func (s *MemoryWalletStore) Add(coin, network, address string) error {
	if coin == "" || network == "" {
		return fmt.Errorf("wallet %q: coin and network are required", address)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := walletKey{coin: strings.ToUpper(coin), network: network}
	s.wallets[key] = append(s.wallets[key], address)
	return nil
}

func (s *MemoryWalletStore) HasWallets(coin, network string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wallets[walletKey{coin: strings.ToUpper(coin), network: network}]) > 0, nil
}

type delegateKey struct {
	network string
	id      string
}

// MemoryDelegateRegistry is an in-memory DelegateRegistry.
type MemoryDelegateRegistry struct {
	mu          sync.RWMutex
	byUsername  map[delegateKey]models.Delegate
	byPublicKey map[delegateKey]models.Delegate
}

func NewMemoryDelegateRegistry() *MemoryDelegateRegistry {
	return &MemoryDelegateRegistry{
		byUsername:  make(map[delegateKey]models.Delegate),
		byPublicKey: make(map[delegateKey]models.Delegate),
	}
}

// Add registers or replaces a delegate.
func (r *MemoryDelegateRegistry) Add(d models.Delegate) error {
	if d.Network == "" || d.Username == "" || d.PublicKey == "" {
		return fmt.Errorf("delegate %q: network, username and public key are required", d.Username)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUsername[delegateKey{network: d.Network, id: d.Username}] = d
	r.byPublicKey[delegateKey{network: d.Network, id: d.PublicKey}] = d
	return nil
}

func (r *MemoryDelegateRegistry) FindByUsername(ctx context.Context, network, username string) (*models.Delegate, error) {
	return r.find(ctx, r.byUsername, delegateKey{network: network, id: username})
}

func (r *MemoryDelegateRegistry) FindByPublicKey(ctx context.Context, network, publicKey string) (*models.Delegate, error) {
	return r.find(ctx, r.byPublicKey, delegateKey{network: network, id: publicKey})
}

func (r *MemoryDelegateRegistry) find(ctx context.Context, index map[delegateKey]models.Delegate, key delegateKey) (*models.Delegate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := index[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

type delegatesFile struct {
	Delegates []models.Delegate `toml:"delegate"`
}

// LoadDelegatesFile seeds the registry from a TOML file with [[delegate]] tables.
func (r *MemoryDelegateRegistry) LoadDelegatesFile(path string) error {
	var f delegatesFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("decode delegates file: %w", err)
	}
	for _, d := range f.Delegates {
		if err := r.Add(d); err != nil {
			return err
		}
	}
	return nil
}
