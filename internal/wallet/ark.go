package wallet

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is part of the ARK address format

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// ARKGenerator derives ARK-style identities.
// Passphrase wallets: private key = SHA-256(passphrase).
// HD wallets: BIP-32 child key of the BIP-39 seed.
// Address = Base58Check(version byte + RIPEMD-160(compressed public key)).
type ARKGenerator struct {
	network models.NetworkDescriptor
}

// NewARKGenerator returns a generator for network.
func NewARKGenerator(network models.NetworkDescriptor) *ARKGenerator {
	return &ARKGenerator{network: network}
}

func (g *ARKGenerator) Network() models.NetworkDescriptor {
	return g.network
}

func (g *ARKGenerator) FromPassphrase(passphrase string) (*models.DerivedAddress, error) {
	if passphrase == "" {
		return nil, errors.New("empty passphrase")
	}
	key := sha256.Sum256([]byte(passphrase))
	return g.fromPrivateKey(key[:], "")
}

func (g *ARKGenerator) FromSeed(seed []byte, path accounts.DerivationPath) (*models.DerivedAddress, error) {
	key, err := deriveKey(seed, path)
	if err != nil {
		return nil, errors.Wrap(err, "derive key")
	}
	return g.fromPrivateKey(key, path.String())
}

func (g *ARKGenerator) fromPrivateKey(key []byte, path string) (*models.DerivedAddress, error) {
	pubKey := compressedPubKey(key)
	return &models.DerivedAddress{
		Network:        g.network.ID,
		Address:        encodeAddress(g.network.PubKeyHash, pubKey),
		DerivationPath: path,
		PublicKey:      hex.EncodeToString(pubKey),
	}, nil
}

// --- helpers ---

func compressedPubKey(privKeyBytes []byte) []byte {
	_, pubKey := btcec.PrivKeyFromBytes(privKeyBytes)
	return pubKey.SerializeCompressed()
}

func encodeAddress(version byte, pubKey []byte) string {
	ripe := ripemd160.New()
	ripe.Write(pubKey)
	return base58.CheckEncode(ripe.Sum(nil), version)
}
