package factom

import (
	"context"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of the wallet's "get-height" API method. Reports the
block height the wallet has cached while syncing, which can lag behind
factomd's own "heights".
*/
func (self Client) WalletHeight(ctx context.Context) (ApiResponse[WalletHeight], error) {
	res, err := WalletdCall[WalletHeight](ctx, self, "get-height", nil)
	return res, errors.Wrap(err, `error in "get-height"`)
}

// Strongly-typed version of the wallet's "properties" API method. Reports the
// factom-walletd build and API versions.
func (self Client) WalletProperties(ctx context.Context) (ApiResponse[WalletProperties], error) {
	res, err := WalletdCall[WalletProperties](ctx, self, "properties", nil)
	return res, errors.Wrap(err, `error in "properties"`)
}

/*
Strongly-typed version of the "sign-data" API method.

Signs arbitrary data with a secret key stored in the wallet, using ed25519.
The signer can be a factoid address (FA...), an entry credit address (EC...),
or an identity key (idpub...). Data goes in base64-encoded; the public key
and signature come back base64-encoded. For large payloads, consider signing
a hash of the data instead of the data itself. The wallet must be unlocked.

The returned signature can be checked locally via "SignData.Verify".
*/
func (self Client) SignData(ctx context.Context, signer string, data string) (ApiResponse[SignData], error) {
	res, err := WalletdCall[SignData](ctx, self, "sign-data", Params{"signer": signer, "data": data})
	return res, errors.Wrap(err, `error in "sign-data"`)
}

/*
Strongly-typed version of the "unlock-wallet" API method. Unlocks an
encrypted wallet for the given number of seconds. Most key-touching methods
return an application error until this succeeds.
*/
func (self Client) UnlockWallet(ctx context.Context, passphrase string, seconds int64) (ApiResponse[UnlockWallet], error) {
	res, err := WalletdCall[UnlockWallet](ctx, self, "unlock-wallet", Params{
		"passphrase": passphrase,
		"timeout":    seconds,
	})
	return res, errors.Wrap(err, `error in "unlock-wallet"`)
}

/*
Strongly-typed version of the "wallet-backup" API method. Returns the wallet
seed and every address pair it holds. Handle with the obvious care.
*/
func (self Client) WalletBackup(ctx context.Context) (ApiResponse[WalletBackup], error) {
	res, err := WalletdCall[WalletBackup](ctx, self, "wallet-backup", nil)
	return res, errors.Wrap(err, `error in "wallet-backup"`)
}

/*
Strongly-typed version of the "wallet-balances" API method. Sums the factoid
and entry credit balances across every address in the wallet, both as saved
in the blockchain and as acknowledged by the network.
*/
func (self Client) WalletBalances(ctx context.Context) (ApiResponse[WalletBalances], error) {
	res, err := WalletdCall[WalletBalances](ctx, self, "wallet-balances", nil)
	return res, errors.Wrap(err, `error in "wallet-balances"`)
}

// Strongly-typed version of the "address" API method. Returns the key pair
// for a single address held by the wallet.
func (self Client) Address(ctx context.Context, address string) (ApiResponse[Address], error) {
	res, err := WalletdCall[Address](ctx, self, "address", Params{"address": address})
	return res, errors.Wrap(err, `error in "address"`)
}

// Strongly-typed version of the "all-addresses" API method.
func (self Client) AllAddresses(ctx context.Context) (ApiResponse[Addresses], error) {
	res, err := WalletdCall[Addresses](ctx, self, "all-addresses", nil)
	return res, errors.Wrap(err, `error in "all-addresses"`)
}

// Strongly-typed version of the "generate-factoid-address" API method.
func (self Client) GenerateFactoidAddress(ctx context.Context) (ApiResponse[Address], error) {
	res, err := WalletdCall[Address](ctx, self, "generate-factoid-address", nil)
	return res, errors.Wrap(err, `error in "generate-factoid-address"`)
}

// Strongly-typed version of the "generate-ec-address" API method.
func (self Client) GenerateEcAddress(ctx context.Context) (ApiResponse[Address], error) {
	res, err := WalletdCall[Address](ctx, self, "generate-ec-address", nil)
	return res, errors.Wrap(err, `error in "generate-ec-address"`)
}

// Wallet "get-height" result.
type WalletHeight struct {
	Height int64 `json:"height"`
}

// Wallet "properties" result.
type WalletProperties struct {
	WalletVersion    string `json:"walletversion"`
	WalletApiVersion string `json:"walletapiversion"`
}

// "sign-data" result. Both fields are base64-encoded.
type SignData struct {
	PubKey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

// "unlock-wallet" result.
type UnlockWallet struct {
	Success       bool  `json:"success"`
	UnlockedUntil int64 `json:"unlockeduntil"`
}

// "wallet-backup" result.
type WalletBackup struct {
	WalletSeed string    `json:"wallet-seed"`
	Addresses  []Address `json:"addresses"`
}

// "address", "generate-factoid-address" and "generate-ec-address" result.
type Address struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// "all-addresses" result.
type Addresses struct {
	Addresses []Address `json:"addresses"`
}

// "wallet-balances" result.
type WalletBalances struct {
	FctAccountBalances AccountBalances `json:"fctaccountbalances"`
	EcAccountBalances  AccountBalances `json:"ecaccountbalances"`
}

type AccountBalances struct {
	Ack   int64 `json:"ack"`
	Saved int64 `json:"saved"`
}
