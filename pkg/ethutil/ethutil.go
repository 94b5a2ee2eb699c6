// Package ethutil holds the Ethereum address and signature helpers shared
// by the wallet endpoints.
package ethutil

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the hex length of a 65-byte secp256k1 signature
// including the 0x prefix.
const SignatureLength = 132

// IsValidAddress reports whether s is "0x" followed by 40 hex digits.
func IsValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// NormalizeAddress returns the canonical stored form of an address.
// Addresses are stored and compared lowercased.
func NormalizeAddress(s string) string {
	return strings.ToLower(s)
}

// IsValidSignature reports whether s has the shape of a personal-sign
// signature: 0x prefix, 130 hex digits. The content is not verified.
func IsValidSignature(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != SignatureLength {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// RecoverAddress recovers the lowercased signer address from an EIP-191
// personal-sign signature over message.
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", fmt.Errorf("invalid signature length: %d", len(sig))
	}

	// Wallets encode the recovery id as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}
	return NormalizeAddress(crypto.PubkeyToAddress(*pub).Hex()), nil
}
