package factom

import (
	"context"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of the "commit-chain" API method.

Like "CommitEntry", but for the first entry of a brand-new chain. The message
is a hex-encoded, signed Chain Commit; complete the creation with
"RevealChain". A commit the network has already seen is declined with a
"repeated commit" application error.
*/
func (self Client) CommitChain(ctx context.Context, message string) (ApiResponse[CommitChain], error) {
	res, err := FactomdCall[CommitChain](ctx, self, "commit-chain", Params{"message": message})
	return res, errors.Wrap(err, `error in "commit-chain"`)
}

/*
Strongly-typed version of the "reveal-chain" API method. Reveals the first
entry of a freshly committed chain. The result shape is identical to
"reveal-entry".
*/
func (self Client) RevealChain(ctx context.Context, entry string) (ApiResponse[RevealEntry], error) {
	res, err := FactomdCall[RevealEntry](ctx, self, "reveal-chain", Params{"entry": entry})
	return res, errors.Wrap(err, `error in "reveal-chain"`)
}

/*
Strongly-typed version of the "chain-head" API method. Returns the key merkle
root of the most recent entry block of the given chain. ChainInProcessList
indicates a chain that has been committed but not yet recorded into a
directory block.
*/
func (self Client) ChainHead(ctx context.Context, chainId string) (ApiResponse[ChainHead], error) {
	res, err := FactomdCall[ChainHead](ctx, self, "chain-head", Params{"chainid": chainId})
	return res, errors.Wrap(err, `error in "chain-head"`)
}

// "commit-chain" result.
type CommitChain struct {
	Message     string `json:"message"`
	TxId        string `json:"txid"`
	EntryHash   string `json:"entryhash"`
	ChainIdHash string `json:"chainidhash"`
}

// "chain-head" result.
type ChainHead struct {
	ChainHead          string `json:"chainhead"`
	ChainInProcessList bool   `json:"chaininprocesslist"`
}
