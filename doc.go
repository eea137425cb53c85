/*
Library for interacting with the Factom blockchain from within a Go program.
Talks to both Factom daemons: factomd (chain state, entries, transactions)
and factom-walletd (keys, transaction construction, identities).

Used at ShanzhaiCity / Purelab. Visit https://shanzhaicity.com to learn about
what we're doing.

Work in progress. Some API methods are missing, but they're trivial to add
via "FactomdCall" / "WalletdCall". Pull requests are welcome.

Features:

	* strongly-typed wrappers for the factomd and factom-walletd v2 APIs

	* typed result structures for every wrapped method

	* application errors surfaced as data, so "repeated commit" and friends
	  can be branched on rather than caught

	* optional structured debug logging of calls

	* optional TOML endpoint configuration

Why

This package consists of ONE small package with a handful of dependencies.
Each call is one HTTP POST carrying one JSON-RPC envelope; there is no hidden
state, no retry policy, no caching, and no background goroutine. What you
call is what goes over the wire.

Client

Construct a client and keep it around; it's an immutable pair of endpoints
and is safe to copy and share:

	client := factom.NewClient()

Or point it at a remote host:

	client := factom.NewClientFromHttpsHost("node.example.com")

Or load the endpoints from a TOML file:

	cfg, err := factom.LoadConfig("factom.toml")
	client := cfg.Client()

Calls

Every method takes a context and returns an ApiResponse plus an error. The
error covers the exchange itself: TransportError, SerializationError, or
DeserializationError. The ApiResponse carries the daemon's verdict: either
the typed result, or the daemon's own error as data. Always check both:

	res, err := client.CommitEntry(ctx, commitHex)
	if err != nil {
		// The exchange failed; nothing reached the daemon, or its answer
		// didn't parse.
		return err
	}
	if !res.Success() {
		// The daemon declined. For commits, a "repeated commit" just means
		// the network has seen this one; proceed to the reveal.
		log.Printf("declined: %v", res.Error)
	}

Two daemons

Factom splits its API between factomd and factom-walletd; each wrapper
routes to the right one. Entry and chain publishing follows the two-phase
commit→reveal protocol, where ordering is the caller's responsibility:

	commit, err := client.CommitEntry(ctx, commitHex)
	reveal, err := client.RevealEntry(ctx, entryHex)

Methods without a typed wrapper can be called directly:

	res, err := factom.FactomdCall[map[string]interface{}](
		ctx, client, "some-new-method", factom.Params{"key": "val"},
	)

Cancelation

All calls accept a context.Context as the first argument. The library
defines no timeout of its own; cancel via the context, or supply your own
http.Client through the Client.HTTP field.

TODO

Add the remaining wallet methods (compose-entry, compose-chain,
import-addresses).

Validate the RPC version in received envelopes.
*/
package factom
