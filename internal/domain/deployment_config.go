package domain

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
)

// DeploymentType selects which deployments/<type>.json is used
type DeploymentType string

const (
	DeploymentTypeTest   DeploymentType = "test"
	DeploymentTypeBeta   DeploymentType = "beta"
	DeploymentTypePublic DeploymentType = "public"
)

// ParseDeploymentType validates a deployment type name
func ParseDeploymentType(s string) (DeploymentType, error) {
	switch t := DeploymentType(strings.ToLower(s)); t {
	case DeploymentTypeTest, DeploymentTypeBeta, DeploymentTypePublic:
		return t, nil
	default:
		return "", fmt.Errorf("invalid deployment type: %s (valid: test, beta, public)", s)
	}
}

// ContractConfig is the configured deployment of one contract
type ContractConfig struct {
	Name              ContractName
	ABI               *abi.ABI
	Bytecode          []byte
	DeployedBytecode  []byte
	Create2Address    common.Address
	NonCreate2Address common.Address
	Args              []string
	BestKnownSalt     *big.Int
}

// Address returns the configured address for the deployment mode
func (c *ContractConfig) Address(create2 bool) common.Address {
	if create2 {
		return c.Create2Address
	}
	return c.NonCreate2Address
}

// DeploymentConfig holds the expected deployment of the whole contract set
type DeploymentConfig struct {
	Type      DeploymentType
	Deployer  common.Address
	Contracts map[ContractName]*ContractConfig
}

// Validate checks that every contract is present and that configured
// addresses are unique within each mode
func (d *DeploymentConfig) Validate() error {
	missing := lo.Filter(AllContracts, func(name ContractName, _ int) bool {
		_, ok := d.Contracts[name]
		return !ok
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncompleteConfig, missing)
	}

	for name := range d.Contracts {
		if !name.IsValid() {
			return fmt.Errorf("%w: %s", ErrUnknownContract, name)
		}
	}

	for _, create2 := range []bool{true, false} {
		seen := make(map[common.Address]ContractName, len(AllContracts))
		for _, name := range AllContracts {
			addr := d.Contracts[name].Address(create2)
			if prev, ok := seen[addr]; ok {
				return fmt.Errorf("%w: %s and %s both use %s", ErrDuplicateAddress, prev, name, addr.Hex())
			}
			seen[addr] = name
		}
	}
	return nil
}

// Contract returns the config for name
func (d *DeploymentConfig) Contract(name ContractName) (*ContractConfig, error) {
	c, ok := d.Contracts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	return c, nil
}

// AddressOf returns the configured address of name for the deployment mode
func (d *DeploymentConfig) AddressOf(name ContractName, create2 bool) common.Address {
	if c, ok := d.Contracts[name]; ok {
		return c.Address(create2)
	}
	return common.Address{}
}

// AddressResolver maps a contract to the address its dependents should use
type AddressResolver func(ContractName) common.Address

// ConfiguredAddresses resolves contracts to their configured address for the mode
func (d *DeploymentConfig) ConfiguredAddresses(create2 bool) AddressResolver {
	return func(name ContractName) common.Address {
		return d.AddressOf(name, create2)
	}
}

// ConstructorArgs converts the configured string args of name into values
// matching its constructor inputs. "@Name" args are replaced by the
// address resolve returns for that contract.
func (d *DeploymentConfig) ConstructorArgs(name ContractName, resolve AddressResolver) ([]any, error) {
	c, err := d.Contract(name)
	if err != nil {
		return nil, err
	}
	if c.ABI == nil {
		if len(c.Args) > 0 {
			return nil, fmt.Errorf("%s has args but no ABI loaded", name)
		}
		return nil, nil
	}

	inputs := c.ABI.Constructor.Inputs
	if len(inputs) != len(c.Args) {
		return nil, fmt.Errorf("%s constructor takes %d args, config has %d", name, len(inputs), len(c.Args))
	}

	out := make([]any, len(inputs))
	for i, raw := range c.Args {
		if ref, ok := strings.CutPrefix(raw, "@"); ok {
			refName, err := ParseContractName(ref)
			if err != nil {
				return nil, fmt.Errorf("%s arg %d: %w", name, i, err)
			}
			raw = resolve(refName).Hex()
		}
		v, err := ConvertArg(inputs[i].Type, raw)
		if err != nil {
			return nil, fmt.Errorf("%s arg %d (%s): %w", name, i, inputs[i].Name, err)
		}
		out[i] = v
	}
	return out, nil
}

// ConvertArg converts a string into the Go value the ABI packer expects for t
func ConvertArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address: %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer: %q", s)
		}
		if t.Size > 64 {
			return n, nil
		}
		target := t.GetType()
		if t.T == abi.UintTy {
			if n.Sign() < 0 || n.BitLen() > t.Size {
				return nil, fmt.Errorf("%s out of range for uint%d", s, t.Size)
			}
			return reflect.ValueOf(n.Uint64()).Convert(target).Interface(), nil
		}
		if !n.IsInt64() {
			return nil, fmt.Errorf("%s out of range for int%d", s, t.Size)
		}
		return reflect.ValueOf(n.Int64()).Convert(target).Interface(), nil
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("%d bytes do not fit bytes%d", len(b), t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported constructor arg type %s", t.String())
	}
}
