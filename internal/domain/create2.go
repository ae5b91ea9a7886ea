package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var maxSalt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Create2Input is the init code of a contract together with the pieces it was built from
type Create2Input struct {
	ContractName ContractName  `json:"contractName"`
	Args         []any         `json:"args"`
	Bytecode     hexutil.Bytes `json:"bytecode"`
	EncodedArgs  hexutil.Bytes `json:"encodedArgs"`
	InitCode     hexutil.Bytes `json:"initCode"`
	InitCodeHash common.Hash   `json:"initCodeHash"`
}

// NewCreate2Input ABI-encodes the constructor args and hashes the resulting init code
func NewCreate2Input(name ContractName, contractABI *abi.ABI, bytecode []byte, args []any) (*Create2Input, error) {
	var encoded []byte
	if contractABI != nil && len(contractABI.Constructor.Inputs) > 0 {
		var err error
		encoded, err = contractABI.Pack("", args...)
		if err != nil {
			return nil, fmt.Errorf("failed to encode constructor args for %s: %w", name, err)
		}
	} else if len(args) > 0 {
		return nil, fmt.Errorf("%s takes no constructor args but %d were given", name, len(args))
	}

	initCode := make([]byte, 0, len(bytecode)+len(encoded))
	initCode = append(initCode, bytecode...)
	initCode = append(initCode, encoded...)

	return &Create2Input{
		ContractName: name,
		Args:         args,
		Bytecode:     bytecode,
		EncodedArgs:  encoded,
		InitCode:     initCode,
		InitCodeHash: crypto.Keccak256Hash(initCode),
	}, nil
}

// Create2Address is a derived CREATE2 address and the values it was derived from
type Create2Address struct {
	ContractName   ContractName   `json:"contractName"`
	FactoryAddress common.Address `json:"factoryAddress"`
	Salt           *big.Int       `json:"salt"`
	SaltBytes32    common.Hash    `json:"saltBytes32"`
	InitCodeHash   common.Hash    `json:"initCodeHash"`
	Address        common.Address `json:"address"`
}

// NewCreate2Address derives the address a factory would create for salt and init code hash
func NewCreate2Address(name ContractName, factory common.Address, salt *big.Int, initCodeHash common.Hash) (*Create2Address, error) {
	saltBytes, err := SaltFromBig(salt)
	if err != nil {
		return nil, err
	}
	return &Create2Address{
		ContractName:   name,
		FactoryAddress: factory,
		Salt:           new(big.Int).Set(salt),
		SaltBytes32:    saltBytes,
		InitCodeHash:   initCodeHash,
		Address:        Derive(factory, saltBytes, initCodeHash),
	}, nil
}

// LeadingZeros counts the zero nibbles at the front of the address
func (c *Create2Address) LeadingZeros() int {
	return LeadingZeros(c.Address)
}

// Create2AddressSearch is the outcome of a salt search
type Create2AddressSearch struct {
	Found    *Create2Address
	Expected common.Address
	Matches  bool
	Attempts uint64
}

// Derive computes keccak256(0xff ++ factory ++ salt ++ initCodeHash)[12:]
func Derive(factory common.Address, salt common.Hash, initCodeHash common.Hash) common.Address {
	return crypto.CreateAddress2(factory, salt, initCodeHash.Bytes())
}

// SaltFromBig left-pads a salt to 32 bytes
func SaltFromBig(salt *big.Int) (common.Hash, error) {
	if salt == nil || salt.Sign() < 0 || salt.Cmp(maxSalt) > 0 {
		return common.Hash{}, fmt.Errorf("salt out of range: %v", salt)
	}
	var out common.Hash
	salt.FillBytes(out[:])
	return out, nil
}

// ParseSalt accepts a decimal or 0x-prefixed hex salt
func ParseSalt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid salt: %q", s)
	}
	if _, err := SaltFromBig(n); err != nil {
		return nil, err
	}
	return n, nil
}

// LeadingZeros counts leading '0' hex characters after the 0x prefix
func LeadingZeros(addr common.Address) int {
	n := 0
	for _, b := range addr {
		if b == 0 {
			n += 2
			continue
		}
		if b>>4 == 0 {
			n++
		}
		break
	}
	return n
}
