package test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gotweet/ledger/common"
)

// DecodeHexString decodes a hex test vector, panicking on bad input. Whitespace
// anywhere in the string is ignored so vectors can be split by field
func DecodeHexString(hexData string) []byte {
	decoded, err := hex.DecodeString(strings.Join(strings.Fields(hexData), ""))
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Keypair returns a deterministic keypair whose seed is filled with the given byte
func Keypair(seed byte) common.Keypair {
	kp, err := common.NewKeypairFromSeed(bytes.Repeat([]byte{seed}, common.KeypairSeedSize))
	if err != nil {
		panic(fmt.Sprintf("error creating keypair: %s", err))
	}
	return kp
}

// PublicKey returns the public key of Keypair(seed)
func PublicKey(seed byte) common.PublicKey {
	return Keypair(seed).PublicKey()
}

// RepeatString returns s repeated until it is exactly n bytes long. s must be
// ASCII
func RepeatString(s string, n int) string {
	return strings.Repeat(s, n/len(s)+1)[:n]
}
