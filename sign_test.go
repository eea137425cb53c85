package factom

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignDataVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("Here be data")
	data := base64.StdEncoding.EncodeToString(msg)
	signed := SignData{
		PubKey:    base64.StdEncoding.EncodeToString(pub),
		Signature: base64.StdEncoding.EncodeToString(ed25519.Sign(priv, msg)),
	}

	ok, err := signed.Verify(data)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same signature, different data: a clean false, not an error.
	ok, err = signed.Verify(base64.StdEncoding.EncodeToString([]byte("tampered")))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = SignData{PubKey: "not base64!", Signature: signed.Signature}.Verify(data)
	assert.Error(t, err)

	_, err = SignData{
		PubKey:    base64.StdEncoding.EncodeToString([]byte("short")),
		Signature: signed.Signature,
	}.Verify(data)
	assert.Error(t, err)
}

// End-to-end: a stubbed walletd signs, the client verifies locally.
func TestSignDataCall(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("Here be data")
	data := base64.StdEncoding.EncodeToString(msg)
	reply := `{"jsonrpc":"2.0","id":0,"result":{` +
		`"pubkey":"` + base64.StdEncoding.EncodeToString(pub) + `",` +
		`"signature":"` + base64.StdEncoding.EncodeToString(ed25519.Sign(priv, msg)) + `"}}`
	daemon := newStubDaemon(t, reply)

	res, err := daemon.client().SignData(context.Background(), "FA2jK2HcLnRdS94dEcU27rF3meoJfpUcZPSinpb7AwQvPRY6RL1Q", data)
	require.NoError(t, err)
	require.True(t, res.Success())

	req := daemon.lastRequest(t)
	assert.Equal(t, "sign-data", req.Method)
	assert.Equal(t, data, req.Params["data"])

	ok, err := res.Result.Verify(data)
	require.NoError(t, err)
	assert.True(t, ok)
}
