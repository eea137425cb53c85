package factom

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

/*
Strongly-typed version of the "ack" API method. Finds the status of a
transaction, whether factoid, commit, or reveal.

The chainId argument disambiguates what the hash refers to: "f" for a factoid
transaction (the hash is the txid), "c" for an entry credit transaction
(commit entry/chain), or the actual chain id for a reveal. The magic letters
are shorthand for the all-zeros-then-f/c chain ids that hold all factoid and
entry credit blocks.

fullTransaction optionally carries the full marshaled transaction instead of
relying on the hash; pass nil to omit it. The statuses reported range from
"Unknown" through "NotConfirmed" and "TransactionACK" to "DBlockConfirmed".
*/
func (self Client) Ack(ctx context.Context, hash string, chainId string, fullTransaction *string) (ApiResponse[Ack], error) {
	params := Params{"hash": hash, "chainid": chainId}
	if fullTransaction != nil {
		params["fulltransaction"] = *fullTransaction
	}
	res, err := FactomdCall[Ack](ctx, self, "ack", params)
	return res, errors.Wrap(err, `error in "ack"`)
}

/*
Strongly-typed version of the "factoid-submit" API method. Submits a
hex-encoded, signed factoid transaction; factom-walletd's
"compose-transaction" can construct one.
*/
func (self Client) FactoidSubmit(ctx context.Context, transaction string) (ApiResponse[FctSubmit], error) {
	res, err := FactomdCall[FctSubmit](ctx, self, "factoid-submit", Params{"transaction": transaction})
	return res, errors.Wrap(err, `error in "factoid-submit"`)
}

/*
Strongly-typed version of the "transaction" API method. Retrieves a factoid
transaction by its hash (or txid), along with the directory and transaction
blocks it's recorded in. The "blockheight" inside the transaction itself is
always 0 for this call; use IncludedInDirectoryBlockHeight, which is -1 when
the hash is unknown.
*/
func (self Client) Transaction(ctx context.Context, hash string) (ApiResponse[Transaction], error) {
	res, err := FactomdCall[Transaction](ctx, self, "transaction", Params{"hash": hash})
	return res, errors.Wrap(err, `error in "transaction"`)
}

/*
Strongly-typed version of the "pending-transactions" API method. Lists
factoid transactions known to the network but not yet recorded in the
blockchain, optionally filtered to those involving the given address; pass
nil for no filter.
*/
func (self Client) PendingTransactions(ctx context.Context, address *string) (ApiResponse[[]PendingTx], error) {
	params := Params{}
	if address != nil {
		params["address"] = *address
	}
	res, err := FactomdCall[[]PendingTx](ctx, self, "pending-transactions", params)
	return res, errors.Wrap(err, `error in "pending-transactions"`)
}

/*
Strongly-typed version of the "new-transaction" API method. Creates a named
working transaction in the wallet. The txid is in flux until the transaction
is signed; don't record it before then.
*/
func (self Client) NewTransaction(ctx context.Context, txName string) (ApiResponse[NewTx], error) {
	res, err := WalletdCall[NewTx](ctx, self, "new-transaction", Params{"tx-name": txName})
	return res, errors.Wrap(err, `error in "new-transaction"`)
}

/*
Strongly-typed version of the "delete-transaction" API method. Deletes a
working transaction in the wallet, returning it one last time.
*/
func (self Client) DeleteTransaction(ctx context.Context, txName string) (ApiResponse[DeleteTx], error) {
	res, err := WalletdCall[DeleteTx](ctx, self, "delete-transaction", Params{"tx-name": txName})
	return res, errors.Wrap(err, `error in "delete-transaction"`)
}

/*
Strongly-typed version of the "add-input" API method. Adds an input to a
working transaction from the given public factoid address; the wallet must
hold the matching private key to sign later. Amounts are in factoshis
(1 factoid = 1e8 factoshis).
*/
func (self Client) AddInput(ctx context.Context, txName string, address string, amount uint64) (ApiResponse[Tx], error) {
	res, err := WalletdCall[Tx](ctx, self, "add-input", Params{
		"tx-name": txName,
		"address": address,
		"amount":  amount,
	})
	return res, errors.Wrap(err, `error in "add-input"`)
}

// Strongly-typed version of the "add-output" API method. Amounts are in
// factoshis.
func (self Client) AddOutput(ctx context.Context, txName string, address string, amount uint64) (ApiResponse[Tx], error) {
	res, err := WalletdCall[Tx](ctx, self, "add-output", Params{
		"tx-name": txName,
		"address": address,
		"amount":  amount,
	})
	return res, errors.Wrap(err, `error in "add-output"`)
}

/*
Strongly-typed version of the "add-ec-output" API method. Adds an entry
credit output to a working transaction. The amount is still in factoshis, not
entry credits: to buy X entry credits, supply X times the current
"entry-credit-rate".
*/
func (self Client) AddEcOutput(ctx context.Context, txName string, address string, amount uint64) (ApiResponse[NewTx], error) {
	res, err := WalletdCall[NewTx](ctx, self, "add-ec-output", Params{
		"tx-name": txName,
		"address": address,
		"amount":  amount,
	})
	return res, errors.Wrap(err, `error in "add-ec-output"`)
}

/*
Strongly-typed version of the "add-fee" API method. A shortcut and safeguard
for topping up the named input address with exactly the required fee. The
wallet declines with "Inputs and outputs don't add up" when the transaction
isn't balanced yet.
*/
func (self Client) AddFee(ctx context.Context, txName string, address string) (ApiResponse[Tx], error) {
	res, err := WalletdCall[Tx](ctx, self, "add-fee", Params{"tx-name": txName, "address": address})
	return res, errors.Wrap(err, `error in "add-fee"`)
}

/*
Strongly-typed version of the "sub-fee" API method. Deducts the fee from the
given output address instead of the sender, which is how a wallet empties
itself completely: input and output the full balance, then sub-fee on the
output.
*/
func (self Client) SubFee(ctx context.Context, txName string, address string) (ApiResponse[Tx], error) {
	res, err := WalletdCall[Tx](ctx, self, "sub-fee", Params{"tx-name": txName, "address": address})
	return res, errors.Wrap(err, `error in "sub-fee"`)
}

// Strongly-typed version of the "sign-transaction" API method. After signing,
// the working transaction is ready to submit via "FactoidSubmit".
func (self Client) SignTransaction(ctx context.Context, txName string) (ApiResponse[Tx], error) {
	res, err := WalletdCall[Tx](ctx, self, "sign-transaction", Params{"tx-name": txName})
	return res, errors.Wrap(err, `error in "sign-transaction"`)
}

// Strongly-typed version of the "tmp-transactions" API method. Lists the
// wallet's working transactions, i.e. those composed but not yet sent.
func (self Client) TmpTransactions(ctx context.Context) (ApiResponse[TmpTransactions], error) {
	res, err := WalletdCall[TmpTransactions](ctx, self, "tmp-transactions", nil)
	return res, errors.Wrap(err, `error in "tmp-transactions"`)
}

/*
Strongly-typed version of the "transactions" API method. Searches recorded
transactions by exactly one of the three filters; see "SearchBy". The wallet
forwards txid searches to factomd, so for those the "Transaction" method
gives a more informative response.
*/
func (self Client) Transactions(ctx context.Context, search SearchBy) (ApiResponse[Transactions], error) {
	if search == nil {
		var out ApiResponse[Transactions]
		return out, &SerializationError{Err: errors.New(`"transactions" requires a search filter`)}
	}
	res, err := WalletdCall[Transactions](ctx, self, "transactions", search.transactionsParams())
	return res, errors.Wrap(err, `error in "transactions"`)
}

// "factoid-submit" result.
type FctSubmit struct {
	Message string `json:"message"`
	TxId    string `json:"txid"`
}

// "transaction" result.
type Transaction struct {
	FactoidTransaction             FactoidTransaction `json:"factoidtransaction"`
	IncludedInTransactionBlock     string             `json:"includedintransactionblock"`
	IncludedInDirectoryBlock       string             `json:"includedindirectoryblock"`
	IncludedInDirectoryBlockHeight int64              `json:"includedindirectoryblockheight"`
}

type FactoidTransaction struct {
	MilliTimestamp int64             `json:"millitimestamp"`
	Inputs         []FctInput        `json:"inputs"`
	Outputs        []FctOutput       `json:"outputs"`
	OutEcs         []json.RawMessage `json:"outecs"`
	Rcds           []string          `json:"rcds"`
	SigBlocks      []SigBlock        `json:"sigblocks"`
	BlockHeight    int64             `json:"blockheight"`
}

// Input of a recorded factoid transaction. Address is the RCD hash; the
// human-readable form is in UserAddress.
type FctInput struct {
	Amount      int64  `json:"amount"`
	Address     string `json:"address"`
	UserAddress string `json:"useraddress"`
}

type FctOutput struct {
	Amount      int64  `json:"amount"`
	Address     string `json:"address"`
	UserAddress string `json:"useraddress"`
}

type SigBlock struct {
	Signatures []string `json:"signatures"`
}

// One element of the "pending-transactions" result.
type PendingTx struct {
	TransactionId string            `json:"transactionid"`
	Status        string            `json:"status"`
	Inputs        []FctInput        `json:"inputs"`
	Outputs       []FctOutput       `json:"outputs"`
	EcOutputs     []json.RawMessage `json:"ecoutputs"`
	Fees          int64             `json:"fees"`
}

// "ack" result. CommitTxId/EntryHash correspond to the CommitData/EntryData
// status objects; which halves are populated depends on whether the search
// was by commit txid or by entry hash.
type Ack struct {
	CommitTxId string    `json:"committxid"`
	EntryHash  string    `json:"entryhash"`
	CommitData AckStatus `json:"commitdata"`
	EntryData  AckStatus `json:"entrydata"`
}

type AckStatus struct {
	Status string `json:"status"`
}

// "new-transaction" and "add-ec-output" result.
type NewTx struct {
	FeesRequired   int64      `json:"feesrequired"`
	Signed         bool       `json:"signed"`
	Name           string     `json:"name"`
	Timestamp      int64      `json:"timestamp"`
	TotalEcOutputs int64      `json:"totalecoutputs"`
	TotalInputs    int64      `json:"totalinputs"`
	TotalOutputs   int64      `json:"totaloutputs"`
	Inputs         []TxInput  `json:"inputs"`
	Outputs        []TxOutput `json:"outputs"`
	EcOutputs      []EcOutput `json:"ecoutputs"`
	TxId           string     `json:"txid"`
}

// Input of a working (wallet) transaction.
type TxInput struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type TxOutput struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type EcOutput struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

// "add-input", "add-output", "add-fee", "sub-fee" and "sign-transaction"
// result.
type Tx struct {
	FeesPaid       int64      `json:"feespaid"`
	FeesRequired   int64      `json:"feesrequired"`
	Signed         bool       `json:"signed"`
	Name           string     `json:"name"`
	Timestamp      int64      `json:"timestamp"`
	TotalEcOutputs int64      `json:"totalecoutputs"`
	TotalInputs    int64      `json:"totalinputs"`
	TotalOutputs   int64      `json:"totaloutputs"`
	Inputs         []TxInput  `json:"inputs"`
	Outputs        []TxOutput `json:"outputs"`
	EcOutputs      []EcOutput `json:"ecoutputs"`
	TxId           string     `json:"txid"`
}

// "delete-transaction" result. The wallet reports the deleted transaction's
// input/output lists as null, hence the raw fields.
type DeleteTx struct {
	Signed         bool            `json:"signed"`
	Name           string          `json:"name"`
	Timestamp      int64           `json:"timestamp"`
	TotalEcOutputs int64           `json:"totalecoutputs"`
	TotalInputs    int64           `json:"totalinputs"`
	TotalOutputs   int64           `json:"totaloutputs"`
	Inputs         json.RawMessage `json:"inputs"`
	Outputs        json.RawMessage `json:"outputs"`
	EcOutputs      json.RawMessage `json:"ecoutputs"`
}

// "tmp-transactions" result.
type TmpTransactions struct {
	Transactions []TmpTransaction `json:"transactions"`
}

type TmpTransaction struct {
	TxName         string `json:"tx-name"`
	TxId           string `json:"txid"`
	TotalInputs    int64  `json:"totalinputs"`
	TotalOutputs   int64  `json:"totaloutputs"`
	TotalEcOutputs int64  `json:"totalecoutputs"`
}

// "transactions" result.
type Transactions struct {
	Transactions []TxSummary `json:"transactions"`
}

// One recorded transaction from the "transactions" search.
type TxSummary struct {
	BlockHeight    int64       `json:"blockheight"`
	FeesPaid       int64       `json:"feespaid"`
	Signed         bool        `json:"signed"`
	Timestamp      int64       `json:"timestamp"`
	TotalEcOutputs int64       `json:"totalecoutputs"`
	TotalInputs    int64       `json:"totalinputs"`
	TotalOutputs   int64       `json:"totaloutputs"`
	Inputs         []FctInput  `json:"inputs"`
	Outputs        []FctOutput `json:"outputs"`
	EcOutputs      []EcOutput  `json:"ecoutputs"`
	TxId           string      `json:"txid"`
}
