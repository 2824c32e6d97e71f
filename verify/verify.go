// Package verify checks a recovered secret against a known secp256k1
// public key or Ethereum address, for secrets that are private keys.
package verify

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/izouxv/hashira/bignum"
)

var (
	// ErrInvalidScalar is returned when the secret is not in [1, N) for secp256k1.
	ErrInvalidScalar = errors.New("secret is not a valid secp256k1 private key")
	// ErrInvalidExpectation is returned for a malformed public key or address.
	ErrInvalidExpectation = errors.New("invalid expected key")
	// ErrMismatch is returned when the secret does not derive the expected key.
	ErrMismatch = errors.New("secret does not match expected key")
)

// privateKeyBytes returns the secret as a 32-byte big-endian scalar.
func privateKeyBytes(secret bignum.Int) ([]byte, error) {
	d, ok := new(big.Int).SetString(secret.String(), 10)
	if !ok {
		return nil, ErrInvalidScalar
	}
	if d.Sign() <= 0 || d.Cmp(secp256k1.S256().Params().N) >= 0 {
		return nil, ErrInvalidScalar
	}
	return d.FillBytes(make([]byte, 32)), nil
}

// Secp256k1PublicKey checks that secret is the private key of pubHex, a
// hex-encoded compressed or uncompressed secp256k1 public key.
func Secp256k1PublicKey(secret bignum.Int, pubHex string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(pubHex), "0x"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpectation, err)
	}
	want, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpectation, err)
	}

	d, err := privateKeyBytes(secret)
	if err != nil {
		return err
	}
	got := secp256k1.PrivKeyFromBytes(d).PubKey()
	if !got.IsEqual(want) {
		return fmt.Errorf("%w: derived %x", ErrMismatch, got.SerializeCompressed())
	}
	return nil
}

// EthereumAddress checks that secret is the private key controlling addr.
func EthereumAddress(secret bignum.Int, addr string) error {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q is not an address", ErrInvalidExpectation, addr)
	}

	d, err := privateKeyBytes(secret)
	if err != nil {
		return err
	}
	key, err := crypto.ToECDSA(d)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	got := crypto.PubkeyToAddress(key.PublicKey)
	if got != common.HexToAddress(addr) {
		return fmt.Errorf("%w: derived %s", ErrMismatch, got.Hex())
	}
	return nil
}
