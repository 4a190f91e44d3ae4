package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
)

const SignPrefix = "Sign this message to authenticate with PokerAssist. Nonce: "

var (
	ErrBadSignature      = errors.New("malformed signature")
	ErrSignatureMismatch = errors.New("signature does not match address")
)

// SignMessage is the text a wallet signs for nonce.
func SignMessage(nonce string) string {
	return SignPrefix + nonce
}

// personalHash 与 MetaMask personal_sign 完全一致
func personalHash(msg string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)
	return crypto.Keccak256Hash([]byte(prefixed)).Bytes()
}

// RecoverAddress returns the checksummed address that signed msg.
// sigHex is 65 bytes of r||s||v, with or without 0x; v may be 0/1 or 27/28.
func RecoverAddress(msg, sigHex string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
	if err != nil || len(sig) != crypto.SignatureLength {
		return "", ErrBadSignature
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(personalHash(msg), sig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// VerifyLogin checks that address signed the login message for nonce.
func VerifyLogin(address, nonce, sigHex string) error {
	recovered, err := RecoverAddress(SignMessage(nonce), sigHex)
	if err != nil {
		return err
	}
	if !strings.EqualFold(recovered, address) {
		return ErrSignatureMismatch
	}
	return nil
}

// IssueToken signs an HS256 JWT whose subject is the address.
func IssueToken(secret []byte, address string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   address,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
