package models

import "math/big"

// Method is a wallet action a deep link can ask for.
type Method string

// Supported deep link methods.
const (
	MethodTransfer Method = "transfer"
	MethodVote     Method = "vote"
	MethodSign     Method = "sign"
)

// NetworkDescriptor identifies a blockchain network the wallet can operate on.
type NetworkDescriptor struct {
	ID      string `json:"id"`
	Coin    string `json:"coin"`
	Nethash string `json:"nethash"`
	// PubKeyHash is the Base58Check version byte of addresses on this network.
	PubKeyHash byte `json:"pub_key_hash"`
	// SLIP44 is the registered coin type used for BIP-44 derivation.
	SLIP44 uint32 `json:"slip44"`
}

// Delegate is a validator identity that can receive votes.
type Delegate struct {
	Network   string `json:"network" toml:"network"`
	Username  string `json:"username" toml:"username"`
	PublicKey string `json:"public_key" toml:"public_key"`
	Address   string `json:"address" toml:"address"`
	Resigned  bool   `json:"resigned" toml:"resigned"`
}

// DerivedAddress holds an identity derived from signing material.
type DerivedAddress struct {
	Network        string `json:"network"`
	Address        string `json:"address"`
	DerivationPath string `json:"derivation_path,omitempty"`
	PublicKey      string `json:"public_key"`
}

// Transaction is an unsigned (or externally signed) action draft built from a
// resolved deep link.
type Transaction struct {
	Network string   `json:"network"`
	Method  Method   `json:"method"`
	From    string   `json:"from,omitempty"`
	To      string   `json:"to,omitempty"`
	Amount  *big.Int `json:"amount,omitempty"`
	Nonce   uint64   `json:"nonce,omitempty"`
	Memo    string   `json:"memo,omitempty"`
	// Message is the payload of a sign-message request.
	Message string `json:"message,omitempty"`
	// Votes lists delegate public keys prefixed with "+".
	Votes []string `json:"votes,omitempty"`
	// DerivationPath is set when the sender is a hardware device.
	DerivationPath  string `json:"derivation_path,omitempty"`
	SecondSignature bool   `json:"second_signature,omitempty"`
	Signed          bool   `json:"signed"`
	Signature       string `json:"signature,omitempty"`
	TxHash          string `json:"tx_hash,omitempty"`
}
