package factom

import (
	"context"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of the "all-identity-keys" API method. Returns every
identity key pair stored in the wallet. An encrypted wallet must be unlocked
first; see "UnlockWallet".
*/
func (self Client) AllIdentityKeys(ctx context.Context) (ApiResponse[IdKeys], error) {
	res, err := WalletdCall[IdKeys](ctx, self, "all-identity-keys", nil)
	return res, errors.Wrap(err, `error in "all-identity-keys"`)
}

/*
Strongly-typed version of the "active-identity-keys" API method.

Returns an identity's public keys, in decreasing priority, as they were at
the given directory block height. This is what makes old identity signatures
checkable: a key replaced at height N+1 still validates entries published at
height N, while anything signed with it afterwards shouldn't be trusted.
*/
func (self Client) ActiveIdentityKeys(ctx context.Context, chainId string, height uint64) (ApiResponse[ActiveIdKeys], error) {
	res, err := WalletdCall[ActiveIdKeys](ctx, self, "active-identity-keys", Params{
		"chainid": chainId,
		"height":  height,
	})
	return res, errors.Wrap(err, `error in "active-identity-keys"`)
}

/*
Strongly-typed version of the "remove-identity-key" API method. Deletes the
key pair matching the given public key from the wallet. There is no undo;
back up important keys first.
*/
func (self Client) RemoveIdentityKey(ctx context.Context, public string) (ApiResponse[RemoveIdKey], error) {
	res, err := WalletdCall[RemoveIdKey](ctx, self, "remove-identity-key", Params{"public": public})
	return res, errors.Wrap(err, `error in "remove-identity-key"`)
}

/*
Strongly-typed version of the "identity-key" API method. Returns the
public/private key pair matching the given public key, or an application
error when the wallet doesn't hold it.
*/
func (self Client) IdentityKey(ctx context.Context, public string) (ApiResponse[IdentityKey], error) {
	res, err := WalletdCall[IdentityKey](ctx, self, "identity-key", Params{"public": public})
	return res, errors.Wrap(err, `error in "identity-key"`)
}

// Strongly-typed version of the "generate-identity-key" API method. Creates
// and stores a brand-new identity key pair.
func (self Client) GenerateIdentityKey(ctx context.Context) (ApiResponse[IdentityKey], error) {
	res, err := WalletdCall[IdentityKey](ctx, self, "generate-identity-key", nil)
	return res, errors.Wrap(err, `error in "generate-identity-key"`)
}

// "all-identity-keys" result.
type IdKeys struct {
	Keys []IdentityKey `json:"keys"`
}

// "identity-key" and "generate-identity-key" result.
type IdentityKey struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// "active-identity-keys" result.
type ActiveIdKeys struct {
	ChainId string   `json:"chainid"`
	Height  int64    `json:"height"`
	Keys    []string `json:"keys"`
}

// "remove-identity-key" result.
type RemoveIdKey struct {
	Success string `json:"success"`
}
