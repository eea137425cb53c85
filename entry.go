package factom

import (
	"context"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of the "commit-entry" API method.

The message is a hex-encoded, signed Entry Commit; factom-walletd's
"compose-entry" can construct one. Committing is the first half of the
two-phase publish protocol: call "RevealEntry" afterwards to complete the
entry. Re-sending a commit the network has already seen is declined with a
"repeated commit" application error (a double-spend guard); when that
happens, skip straight to the reveal. This library doesn't track or enforce
the commit→reveal ordering.
*/
func (self Client) CommitEntry(ctx context.Context, message string) (ApiResponse[CommitEntry], error) {
	res, err := FactomdCall[CommitEntry](ctx, self, "commit-entry", Params{"message": message})
	return res, errors.Wrap(err, `error in "commit-entry"`)
}

/*
Strongly-typed version of the "reveal-entry" API method. Reveals the full
entry content after its commit; the entry is a hex-encoded, signed Entry
structure.
*/
func (self Client) RevealEntry(ctx context.Context, entry string) (ApiResponse[RevealEntry], error) {
	res, err := FactomdCall[RevealEntry](ctx, self, "reveal-entry", Params{"entry": entry})
	return res, errors.Wrap(err, `error in "reveal-entry"`)
}

// Strongly-typed version of the "entry" API method. Fetches an entry by its
// entry hash.
func (self Client) Entry(ctx context.Context, hash string) (ApiResponse[Entry], error) {
	res, err := FactomdCall[Entry](ctx, self, "entry", Params{"hash": hash})
	return res, errors.Wrap(err, `error in "entry"`)
}

/*
Strongly-typed version of the "raw-data" API method. Retrieves an entry or
transaction in raw format; the data is a hex-encoded string.
*/
func (self Client) RawData(ctx context.Context, hash string) (ApiResponse[RawData], error) {
	res, err := FactomdCall[RawData](ctx, self, "raw-data", Params{"hash": hash})
	return res, errors.Wrap(err, `error in "raw-data"`)
}

/*
Strongly-typed version of the "pending-entries" API method. Lists entries
that have been submitted but not yet recorded into the blockchain.
*/
func (self Client) PendingEntries(ctx context.Context) (ApiResponse[[]PendingEntry], error) {
	res, err := FactomdCall[[]PendingEntry](ctx, self, "pending-entries", nil)
	return res, errors.Wrap(err, `error in "pending-entries"`)
}

// "entry" result.
type Entry struct {
	ChainId string   `json:"chainid"`
	Content string   `json:"content"`
	ExtIds  []string `json:"extids"`
}

// "commit-entry" result.
type CommitEntry struct {
	Message   string `json:"message"`
	TxId      string `json:"txid"`
	EntryHash string `json:"entryhash"`
}

// "reveal-entry" and "reveal-chain" result.
type RevealEntry struct {
	Message   string `json:"message"`
	EntryHash string `json:"entryhash"`
	ChainId   string `json:"chainid"`
}

// "raw-data" result.
type RawData struct {
	Data string `json:"data"`
}

// One element of the "pending-entries" result.
type PendingEntry struct {
	EntryHash string `json:"entryhash"`
	ChainId   string `json:"chainid"`
	Status    string `json:"status"`
}
