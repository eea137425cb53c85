package factom

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/pkg/errors"
)

/*
Verify reports whether the response's signature is a valid ed25519 signature,
by the response's public key, of the given data (base64-encoded, exactly as
it was passed to "SignData"). Returns an error when any of the base64 fields
don't decode or the public key has the wrong size; a clean false means the
signature simply doesn't match.
*/
func (self SignData) Verify(data string) (bool, error) {
	pub, err := base64.StdEncoding.DecodeString(self.PubKey)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode public key")
	}
	if len(pub) != ed25519.PublicKeySize {
		return false, errors.Errorf("unexpected public key size: %v", len(pub))
	}

	sig, err := base64.StdEncoding.DecodeString(self.Signature)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode signature")
	}
	if len(sig) != ed25519.SignatureSize {
		return false, errors.Errorf("unexpected signature size: %v", len(sig))
	}

	msg, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode data")
	}

	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig), nil
}
