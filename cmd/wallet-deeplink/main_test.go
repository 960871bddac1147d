package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

const (
	devnetNethash = "2a44f340d76ffc3df204c5f38cd355b7496c9065a1ade2ef92071436bd72e867"
	genesisKey    = "03287bfebba4c7881a0509717e71b34b63f31e40021c321f89ae04f84be6d6ac37"
	passphrase    = "this is a top secret passphrase"
	senderAddress = "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"
	recipient     = "D6FgcG6dVS6FgEF4ogvNrpYdw9BUggqePF"
	testMnemonic  = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	delegates := filepath.Join(dir, "delegates.toml")
	require.NoError(t, os.WriteFile(delegates, []byte(`
[[delegate]]
network = "ark.devnet"
username = "genesis_1"
public_key = "`+genesisKey+`"
`), 0o600))

	t.Setenv("WALLET_PROFILE_ID", "p1")
	t.Setenv("WALLET_ENABLED_NETWORKS", "ark.devnet,ark.mainnet")
	t.Setenv("WALLET_WALLETS", "ARK:ark.devnet:D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib")
	t.Setenv("WALLET_DELEGATES_FILE", delegates)
	t.Setenv("WALLET_LOG_LEVEL", "error")
}

func TestValidateCmd_Transfer(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "validate", "ark:transfer?coin=ARK&method=transfer&network=ark.devnet&recipient=D6FgcG6dVS6FgEF4ogvNrpYdw9BUggqePF")
	require.NoError(t, err)
	assert.Equal(t,
		"/profiles/p1/send-transfer?coin=ARK&method=transfer&nethash="+devnetNethash+"&recipient=D6FgcG6dVS6FgEF4ogvNrpYdw9BUggqePF\n",
		stdout,
	)
}

func TestValidateCmd_Vote(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "validate", "ark:vote?coin=ARK&method=vote&nethash="+devnetNethash+"&delegate=genesis_1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "/profiles/p1/send-vote?"))
}

func TestValidateCmd_LocalizedFailure(t *testing.T) {
	setupEnv(t)
	t.Setenv("WALLET_LOCALE", "de")

	_, stderr, err := run(t, "validate", "ark:transfer?coin=ARK&method=transfer&network=custom")
	require.Error(t, err)
	assert.True(t, deeplink.IsKind(err, deeplink.NetworkInvalid))
	assert.Contains(t, stderr, `"custom" ist kein gültiges Netzwerk.`)
}

func TestValidateCmd_Pin(t *testing.T) {
	setupEnv(t)

	_, stderr, err := run(t, "validate", "--pin-network", "ark.mainnet", "ark:transfer?coin=ARK&method=transfer&network=ark.devnet")
	require.Error(t, err)
	assert.True(t, deeplink.IsKind(err, deeplink.NetworkMismatch))
	assert.Contains(t, stderr, "The network does not match the selected wallet.")
}

func TestNetworksCmd(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "networks")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ark.devnet\tARK\t"+devnetNethash))
}

func decodeDraft(t *testing.T, stdout string) models.Transaction {
	t.Helper()
	var draft models.Transaction
	require.NoError(t, json.Unmarshal([]byte(stdout), &draft))
	return draft
}

func TestDraftCmd_TransferWithSecret(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "draft", "--secret", passphrase,
		"ark:transfer?coin=ARK&method=transfer&network=ark.devnet&recipient="+recipient+"&amount=1.5&memo=rent")
	require.NoError(t, err)

	draft := decodeDraft(t, stdout)
	assert.Equal(t, "ark.devnet", draft.Network)
	assert.Equal(t, models.MethodTransfer, draft.Method)
	assert.Equal(t, senderAddress, draft.From)
	assert.Equal(t, recipient, draft.To)
	require.NotNil(t, draft.Amount)
	assert.Equal(t, "150000000", draft.Amount.String())
	assert.Equal(t, "rent", draft.Memo)
	assert.Equal(t, uint64(1), draft.Nonce)
	assert.False(t, draft.Signed)
	assert.False(t, draft.SecondSignature)
}

func TestDraftCmd_AmountDecimalsFromConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("WALLET_AMOUNT_DECIMALS", "2")

	stdout, _, err := run(t, "draft", "--secret", passphrase,
		"ark:transfer?coin=ARK&method=transfer&network=ark.devnet&recipient="+recipient+"&amount=1.5")
	require.NoError(t, err)
	assert.Equal(t, "150", decodeDraft(t, stdout).Amount.String())
}

func TestDraftCmd_ConfirmationSecret(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "draft", "--secret", passphrase, "--confirm", "this is a top secret second passphrase",
		"ark:vote?coin=ARK&method=vote&nethash="+devnetNethash+"&delegate=genesis_1")
	require.NoError(t, err)

	draft := decodeDraft(t, stdout)
	assert.Equal(t, senderAddress, draft.From)
	assert.True(t, draft.SecondSignature)
	assert.Equal(t, []string{"+" + genesisKey}, draft.Votes)
}

func TestDraftCmd_MnemonicWithBIP44(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "draft", "--mnemonic", testMnemonic, "--bip44-index", "0",
		"ark:sign?coin=ARK&method=sign&network=ark.devnet&message=hello")
	require.NoError(t, err)

	draft := decodeDraft(t, stdout)
	assert.Equal(t, "DG3XBwEsHoVq4qDZz1XdpVRvvHkeUs5T2D", draft.From)
	assert.Equal(t, "hello", draft.Message)
	assert.Zero(t, draft.Nonce)
}

func TestDraftCmd_Ledger(t *testing.T) {
	setupEnv(t)

	stdout, _, err := run(t, "draft", "--ledger-path", "m/44'/1'/0'/0/0",
		"ark:vote?coin=ARK&method=vote&network=ark.devnet&publicKey="+genesisKey)
	require.NoError(t, err)

	draft := decodeDraft(t, stdout)
	assert.Equal(t, "m/44'/1'/0'/0/0", draft.DerivationPath)
	assert.Empty(t, draft.From)
	assert.Zero(t, draft.Nonce)
}

func TestDraftCmd_Rejects(t *testing.T) {
	setupEnv(t)
	link := "ark:transfer?coin=ARK&method=transfer&network=ark.devnet&recipient=" + recipient + "&amount=1"

	tests := []struct {
		name string
		args []string
	}{
		{name: "no credential", args: []string{"draft", link}},
		{name: "two credentials", args: []string{"draft", "--secret", passphrase, "--mnemonic", testMnemonic, link}},
		{name: "invalid ledger path", args: []string{"draft", "--ledger-path", "44'/1'", link}},
		{name: "confirm with ledger", args: []string{"draft", "--ledger-path", "m/44'/1'/0'/0/0", "--confirm", "x", link}},
		{name: "transfer without amount", args: []string{"draft", "--secret", passphrase,
			"ark:transfer?coin=ARK&method=transfer&network=ark.devnet&recipient=" + recipient}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Empty(t, stdout)
		})
	}
}

func TestDraftCmd_ValidationFailure(t *testing.T) {
	setupEnv(t)

	_, stderr, err := run(t, "draft", "--secret", passphrase, "ark:vote?coin=ARK&method=vote&network=ark.devnet")
	require.Error(t, err)
	assert.True(t, deeplink.IsKind(err, deeplink.DelegateMissing))
	assert.NotEmpty(t, stderr)
}
