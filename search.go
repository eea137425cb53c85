package factom

/*
SearchBy selects exactly one of the three filters accepted by the
"transactions" method: a transaction id, an address, or a block height range.
The interface is sealed (TxId, TxAddress and TxRange are the only
implementations), which guarantees that exactly one filter shape is encoded
into the params: never zero, never more than one.
*/
type SearchBy interface {
	transactionsParams() Params
}

/*
TxId searches "transactions" by transaction id. This is the fastest lookup,
but the daemon reports the block height as 0 for it; search by address when
the height matters.
*/
type TxId string

func (self TxId) transactionsParams() Params { return Params{"txid": string(self)} }

// TxAddress searches "transactions" for all transactions involving an
// address.
type TxAddress string

func (self TxAddress) transactionsParams() Params { return Params{"address": string(self)} }

// TxRange searches "transactions" within an inclusive block height range.
type TxRange struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

func (self TxRange) transactionsParams() Params { return Params{"range": self} }
