package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

// DefaultParamspace - default parameter namespace
const (
	DefaultParamspace = ModuleName
)

// DefaultFeeDenom is the denomination election creation fees are charged in
const DefaultFeeDenom = "uvls"

// KeyFeeDenom is the key for the fee denomination
var KeyFeeDenom = []byte("feeDenom")

// KeyTable retrieves a subspace table for the module
func KeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// Params represents the genesis parameter set for the module
type Params struct {
	FeeDenom string
}

// DefaultParams - the module's default parameters
func DefaultParams() Params {
	return Params{
		FeeDenom: DefaultFeeDenom,
	}
}

// ParamSetPairs implements the ParamSet interface and returns all the key/value
// pairs of the elections module's parameters.
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	/*
		because the subspace package makes liberal use of pointers to set and get values from the store,
		this method needs to have a pointer receiver AND NewParamSetPair needs to receive the
		parameter values as pointer arguments, otherwise either the internal type reflection panics or the value will not be
		set on the correct Params data struct
	*/
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyFeeDenom, &p.FeeDenom, validateFeeDenom),
	}
}

func validateFeeDenom(denom interface{}) error {
	d, ok := denom.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type for fee denom: %T", denom)
	}
	return sdk.ValidateDenom(d)
}

// Validate performs a validation check on the parameters
func (p Params) Validate() error {
	return validateFeeDenom(p.FeeDenom)
}
