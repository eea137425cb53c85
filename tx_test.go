package factom

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyResult = `{"jsonrpc":"2.0","id":0,"result":{}}`

/*
The "transactions" search takes exactly one of three filter shapes; whichever
is chosen must be the only key in params.
*/
func TestTransactionsSearchBy(t *testing.T) {
	daemon := newStubDaemon(t, emptyResult)
	client := daemon.client()
	ctx := context.Background()

	_, err := client.Transactions(ctx, TxRange{Start: 1, End: 2})
	require.NoError(t, err)
	params := daemon.lastRequest(t).Params
	assert.Equal(t, Params{"range": map[string]interface{}{
		"start": float64(1),
		"end":   float64(2),
	}}, params)
	assert.NotContains(t, params, "txid")
	assert.NotContains(t, params, "address")

	txid := "21fc64855771f2ee12da2a85b1aa0108007ed3a566425f3eaec7c8c7d2db6c6d"
	_, err = client.Transactions(ctx, TxId(txid))
	require.NoError(t, err)
	assert.Equal(t, Params{"txid": txid}, daemon.lastRequest(t).Params)

	address := "FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q"
	_, err = client.Transactions(ctx, TxAddress(address))
	require.NoError(t, err)
	assert.Equal(t, Params{"address": address}, daemon.lastRequest(t).Params)
}

func TestTransactionsNilSearch(t *testing.T) {
	daemon := newStubDaemon(t, emptyResult)

	_, err := daemon.client().Transactions(context.Background(), nil)
	var ser *SerializationError
	require.True(t, errors.As(err, &ser), "expected a SerializationError, got: %v", err)
}

/*
Absent optional arguments must leave their key out of params entirely; the
daemons distinguish "absent" from "present-but-empty".
*/
func TestAckOptionalFullTransaction(t *testing.T) {
	daemon := newStubDaemon(t, emptyResult)
	client := daemon.client()
	ctx := context.Background()
	hash := "6ecd7c6c40d0e9dbb52457343e083d4306c5b4cd2d6e623ba67cf9d18b39faa7"

	_, err := client.Ack(ctx, hash, "f", nil)
	require.NoError(t, err)
	params := daemon.lastRequest(t).Params
	assert.Equal(t, Params{"hash": hash, "chainid": "f"}, params)
	assert.NotContains(t, params, "fulltransaction")

	full := "0201565d109233010100b0a0e100"
	_, err = client.Ack(ctx, hash, "f", &full)
	require.NoError(t, err)
	assert.Equal(t, full, daemon.lastRequest(t).Params["fulltransaction"])
}

func TestPendingTransactionsOptionalAddress(t *testing.T) {
	daemon := newStubDaemon(t, `{"jsonrpc":"2.0","id":0,"result":[]}`)
	client := daemon.client()
	ctx := context.Background()

	_, err := client.PendingTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, daemon.lastRequest(t).Params)

	address := "FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q"
	_, err = client.PendingTransactions(ctx, &address)
	require.NoError(t, err)
	assert.Equal(t, Params{"address": address}, daemon.lastRequest(t).Params)
}

func TestTransactionResultShape(t *testing.T) {
	daemon := newStubDaemon(t, `{"jsonrpc":"2.0","id":0,"result":{
		"factoidtransaction":{
			"millitimestamp":1441138021262,
			"inputs":[{"amount":1000010000,"address":"646f3e87","useraddress":"FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q"}],
			"outputs":[{"amount":1000000000,"address":"ce7b98bf","useraddress":"FA3syRxpYEvFFvoN4ZfNRJVQdumLpTK4CMmMUFmKGeqyTNgsg5uH"}],
			"outecs":[],
			"rcds":["0174"],
			"sigblocks":[{"signatures":["5ed2914a"]}],
			"blockheight":0
		},
		"includedintransactionblock":"9372467a",
		"includedindirectoryblock":"a4b2fd29",
		"includedindirectoryblockheight":27735
	}}`)

	res, err := daemon.client().Transaction(context.Background(), "21fc6485")
	require.NoError(t, err)
	require.True(t, res.Success())

	tx := res.Result
	assert.Equal(t, int64(27735), tx.IncludedInDirectoryBlockHeight)
	require.Len(t, tx.FactoidTransaction.Inputs, 1)
	assert.Equal(t, int64(1000010000), tx.FactoidTransaction.Inputs[0].Amount)
	assert.Equal(t, "FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q",
		tx.FactoidTransaction.Inputs[0].UserAddress)
	require.Len(t, tx.FactoidTransaction.SigBlocks, 1)
	assert.Equal(t, []string{"5ed2914a"}, tx.FactoidTransaction.SigBlocks[0].Signatures)
}

func TestTmpTransactionsResultShape(t *testing.T) {
	daemon := newStubDaemon(t, `{"jsonrpc":"2.0","id":0,"result":{"transactions":[
		{"tx-name":"test-tx","txid":"","totalinputs":2000000000,"totaloutputs":1000000000,"totalecoutputs":10000}
	]}}`)

	res, err := daemon.client().TmpTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Result.Transactions, 1)
	assert.Equal(t, "test-tx", res.Result.Transactions[0].TxName)
	assert.Equal(t, int64(10000), res.Result.Transactions[0].TotalEcOutputs)
}
