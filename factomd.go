package factom

import (
	"context"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of factomd's "heights" API method. Returns the node's
distinct sync heights. Directory blocks arrive first while syncing, so the
entry block and entry heights can lag behind; entries added above the entry
height aren't retrievable from this node yet.
*/
func (self Client) Heights(ctx context.Context) (ApiResponse[Heights], error) {
	res, err := FactomdCall[Heights](ctx, self, "heights", nil)
	return res, errors.Wrap(err, `error in "heights"`)
}

/*
Strongly-typed version of the "current-minute" API method. Reports where the
network is inside the current 10-minute block, plus the node's notion of
time and whether a stall was detected.
*/
func (self Client) CurrentMinute(ctx context.Context) (ApiResponse[CurrentMinute], error) {
	res, err := FactomdCall[CurrentMinute](ctx, self, "current-minute", nil)
	return res, errors.Wrap(err, `error in "current-minute"`)
}

/*
Strongly-typed version of the "entry-credit-rate" API method. Returns the
number of factoshis one entry credit currently costs; multiply by the entry
credit amount when composing an "add-ec-output".
*/
func (self Client) EntryCreditRate(ctx context.Context) (ApiResponse[EcRate], error) {
	res, err := FactomdCall[EcRate](ctx, self, "entry-credit-rate", nil)
	return res, errors.Wrap(err, `error in "entry-credit-rate"`)
}

// Strongly-typed version of the "factoid-balance" API method. The balance is
// in factoshis.
func (self Client) FactoidBalance(ctx context.Context, address string) (ApiResponse[Balance], error) {
	res, err := FactomdCall[Balance](ctx, self, "factoid-balance", Params{"address": address})
	return res, errors.Wrap(err, `error in "factoid-balance"`)
}

// Strongly-typed version of the "entry-credit-balance" API method.
func (self Client) EntryCreditBalance(ctx context.Context, address string) (ApiResponse[Balance], error) {
	res, err := FactomdCall[Balance](ctx, self, "entry-credit-balance", Params{"address": address})
	return res, errors.Wrap(err, `error in "entry-credit-balance"`)
}

// Strongly-typed version of factomd's "properties" API method. The wallet has
// a same-named method; see "WalletProperties".
func (self Client) FactomdProperties(ctx context.Context) (ApiResponse[FactomdProperties], error) {
	res, err := FactomdCall[FactomdProperties](ctx, self, "properties", nil)
	return res, errors.Wrap(err, `error in "properties"`)
}

// "heights" result.
type Heights struct {
	DirectoryBlock uint64 `json:"directoryblockheight"`
	Leader         uint64 `json:"leaderheight"`
	EntryBlock     uint64 `json:"entryblockheight"`
	Entry          uint64 `json:"entryheight"`
}

// "current-minute" result. Times are unix nanoseconds.
type CurrentMinute struct {
	LeaderHeight            uint64 `json:"leaderheight"`
	DirectoryBlockHeight    uint64 `json:"directoryblockheight"`
	Minute                  int    `json:"minute"`
	CurrentBlockStartTime   int64  `json:"currentblockstarttime"`
	CurrentMinuteStartTime  int64  `json:"currentminutestarttime"`
	CurrentTime             int64  `json:"currenttime"`
	DirectoryBlockInSeconds int    `json:"directoryblockinseconds"`
	StallDetected           bool   `json:"stalldetected"`
	FaultTimeout            int    `json:"faulttimeout"`
	RoundTimeout            int    `json:"roundtimeout"`
}

// "entry-credit-rate" result, in factoshis per entry credit.
type EcRate struct {
	Rate uint64 `json:"rate"`
}

// "factoid-balance" and "entry-credit-balance" result.
type Balance struct {
	Balance int64 `json:"balance"`
}

// factomd "properties" result.
type FactomdProperties struct {
	FactomdVersion    string `json:"factomdversion"`
	FactomdApiVersion string `json:"factomdapiversion"`
}
