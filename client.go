package factom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const jsonRpcVersion = "2.0"

/*
Every call is a single synchronous request/response over its own HTTP
exchange. Nothing is pipelined, so there's no need to correlate responses by
id, and the id never varies.
*/
const requestId = 0

// Defaults for the factomd and factom-walletd endpoints.
const (
	FactomdDefault = "http://localhost:8089/v2"
	WalletdDefault = "http://localhost:8088/v2"
)

const (
	apiVersion  = 2
	factomdPort = 8089
	walletdPort = 8088
)

/*
Client holds the base endpoints of the two Factom daemons: factomd, which
exposes chain-state queries and submissions, and factom-walletd, which holds
keys and constructs/signs transactions. Factom splits these into separate
services, so every method routes to one or the other; see the individual
method docs.

A Client is just a pair of endpoints plus optional knobs. It carries no
mutable state, no connection pool of its own, and no session: copy it freely
and share it between any number of goroutines. Every call is a pure function
of the Client and its arguments.
*/
type Client struct {
	FactomdServer string
	WalletdServer string

	// Optional. When nil, "http.DefaultClient" is used. Supply your own to
	// configure TLS or timeouts; this library deliberately sets neither and
	// never retries.
	HTTP *http.Client

	// Optional. When set, every call is logged at debug level with its
	// method, endpoint, and duration.
	Log logrus.FieldLogger
}

// NewClient returns a Client pointing at the default localhost endpoints.
func NewClient() Client {
	return Client{FactomdServer: FactomdDefault, WalletdServer: WalletdDefault}
}

/*
NewClientFromHost returns a Client pointing both daemons at the given host
over plain HTTP, on the standard ports.
*/
func NewClientFromHost(host string) Client {
	return Client{
		FactomdServer: fmt.Sprintf("http://%v:%v/v%v", host, factomdPort, apiVersion),
		WalletdServer: fmt.Sprintf("http://%v:%v/v%v", host, walletdPort, apiVersion),
	}
}

// Same as "NewClientFromHost", but over HTTPS.
func NewClientFromHttpsHost(host string) Client {
	return Client{
		FactomdServer: fmt.Sprintf("https://%v:%v/v%v", host, factomdPort, apiVersion),
		WalletdServer: fmt.Sprintf("https://%v:%v/v%v", host, walletdPort, apiVersion),
	}
}

/*
Params is the named-parameter mapping sent in the request envelope. Keys must
match what the remote method expects; nothing is validated locally, the
daemon is authoritative. An optional parameter that's absent must be left out
of the mapping entirely, since the daemons distinguish "absent" from
"present-but-empty".
*/
type Params map[string]interface{}

// Outbound JSON-RPC envelope.
type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Id      uint32 `json:"id"`
	Method  string `json:"method"`
	Params  Params `json:"params"`
}

/*
Inbound JSON-RPC envelope. Exactly one of Result/Error is expected. Decoding
the result payload is deferred to the caller, since every method has its own
result shape.
*/
type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      uint32          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *ApiError       `json:"error"`
}

func encodeRequest(method string, params Params) ([]byte, error) {
	if method == "" {
		return nil, &SerializationError{Err: errors.New("empty method name")}
	}
	// The daemons expect "params" to always be an object.
	if params == nil {
		params = Params{}
	}

	body, err := json.Marshal(rpcRequest{
		Jsonrpc: jsonRpcVersion,
		Id:      requestId,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return body, nil
}

/*
Parses raw response bytes into the generic envelope. An error outcome from the
daemon is a valid decode, exposed as data; only malformed bytes, or an
envelope carrying neither "result" nor "error", fail.
*/
func decodeEnvelope(body []byte) (rpcResponse, error) {
	var env rpcResponse
	err := json.Unmarshal(body, &env)
	if err != nil {
		return env, &DeserializationError{Err: err}
	}
	if env.Result == nil && env.Error == nil {
		return env, &DeserializationError{Err: errors.New("envelope has neither result nor error")}
	}
	return env, nil
}

/*
Performs one HTTP POST of the encoded request to the given base endpoint and
returns the raw response body. The HTTP status is deliberately ignored: both
daemons answer with a well-formed JSON-RPC envelope even for their own
errors, and that envelope is more informative than the status line. A failure
before a body is received surfaces as a TransportError.
*/
func (self Client) send(ctx context.Context, server string, method string, params Params) ([]byte, error) {
	body, err := encodeRequest(method, params)
	if err != nil {
		return nil, err
	}

	// Parse failure indicates misconfiguration; never retried.
	uri, err := url.Parse(server)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := self.http().Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	out, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if self.Log != nil {
		self.Log.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": uri.String(),
			"duration": time.Since(start),
		}).Debug("factom: RPC call")
	}
	return out, nil
}

func (self Client) http() *http.Client {
	if self.HTTP == nil {
		return http.DefaultClient
	}
	return self.HTTP
}

/*
FactomdCall makes a JSON-RPC call against the factomd endpoint and decodes the
result payload into T. A non-nil error covers the exchange itself: transport,
serialization, or deserialization failure. An error *returned by the daemon*
is not an error here (the call completed; the daemon declined) and comes
back as data on the ApiResponse so callers can branch on its code.

The typed methods on Client all bottom out here or in "WalletdCall". Use
these directly for any method that doesn't have a typed wrapper yet.
*/
func FactomdCall[T any](ctx context.Context, c Client, method string, params Params) (ApiResponse[T], error) {
	return call[T](ctx, c, c.FactomdServer, method, params)
}

// Same as "FactomdCall", against the factom-walletd endpoint.
func WalletdCall[T any](ctx context.Context, c Client, method string, params Params) (ApiResponse[T], error) {
	return call[T](ctx, c, c.WalletdServer, method, params)
}

func call[T any](ctx context.Context, c Client, server string, method string, params Params) (ApiResponse[T], error) {
	var out ApiResponse[T]

	body, err := c.send(ctx, server, method, params)
	if err != nil {
		return out, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return out, err
	}
	out.Jsonrpc = env.Jsonrpc
	out.Id = env.Id

	// When the daemon somehow sends both outcomes, the error wins.
	if env.Error != nil {
		out.Error = *env.Error
		return out, nil
	}

	err = json.Unmarshal(env.Result, &out.Result)
	if err != nil {
		return out, &DeserializationError{Err: err}
	}
	return out, nil
}
