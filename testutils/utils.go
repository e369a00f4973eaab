// Package testutils provides general purpose utility functions for unit/integration testing.
package testutils

import (
	"math/rand"

	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	appParams "github.com/vocalis-network/vocalis-core/app/params"
	"github.com/vocalis-network/vocalis-core/testutils/mock"
	electionsTypes "github.com/vocalis-network/vocalis-core/x/elections/types"
)

// MakeEncodingConfig returns an unsealed encoding config with all module types registered
// so tests have access to marshalling the registered types
func MakeEncodingConfig() appParams.EncodingConfig {
	encodingConfig := appParams.MakeEncodingConfig()
	std.RegisterLegacyAminoCodec(encodingConfig.Amino)
	electionsTypes.RegisterLegacyAminoCodec(encodingConfig.Amino)

	return encodingConfig
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandBytes returns n random bytes
func RandBytes(n int) []byte {
	bz := make([]byte, n)
	rand.Read(bz)
	return bz
}

// RandAddress returns a random account address for testing
func RandAddress() sdk.AccAddress {
	return RandBytes(sdk.AddrLen)
}

// RandString returns a random string of letters of length n
func RandString(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = letters[rand.Intn(len(letters))]
	}
	return string(s)
}

// NewContext returns a context at the given block height backed by a fresh in-memory multistore
func NewContext(height int64) sdk.Context {
	return sdk.NewContext(mock.NewMultiStore(), tmproto.Header{Height: height}, false, log.TestingLogger())
}
