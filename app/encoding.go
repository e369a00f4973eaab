package app

import (
	"github.com/cosmos/cosmos-sdk/std"

	"github.com/vocalis-network/vocalis-core/app/params"
)

// MakeEncodingConfig creates an EncodingConfig with all the app's types registered
func MakeEncodingConfig() params.EncodingConfig {
	encodingConfig := params.MakeEncodingConfig()
	std.RegisterLegacyAminoCodec(encodingConfig.Amino)
	std.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	ModuleBasics.RegisterLegacyAminoCodec(encodingConfig.Amino)
	ModuleBasics.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	return encodingConfig
}
