package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/bindings"
)

var contractBindings = map[domain.ContractName]func() *bindings.Contract{
	domain.OwnerProxy:                                 bindings.NewOwnerProxy,
	domain.OpenAvatarGen0Assets:                       bindings.NewOpenAvatarGen0Assets,
	domain.OpenAvatarGen0Renderer:                     bindings.NewOpenAvatarGen0Renderer,
	domain.OpenAvatarGen0RendererRegistry:             bindings.NewOpenAvatarGen0RendererRegistry,
	domain.OpenAvatarGen0Token:                        bindings.NewOpenAvatarGen0Token,
	domain.OpenAvatarGen0TextRecords:                  bindings.NewOpenAvatarGen0TextRecords,
	domain.OpenAvatarGen0ProfilePictureRenderer:       bindings.NewOpenAvatarGen0ProfilePictureRenderer,
	domain.OpenAvatarGen0ExampleMutableCanvasRenderer: bindings.NewOpenAvatarGen0ExampleMutableCanvasRenderer,
}

// boundContract reads and packs calls for one deployed contract
type boundContract struct {
	name    domain.ContractName
	address common.Address
	binding *bindings.Contract
	chain   ChainClient
}

func newBoundContract(name domain.ContractName, address common.Address, chain ChainClient) *boundContract {
	newBinding, ok := contractBindings[name]
	if !ok {
		panic(fmt.Sprintf("no binding for %s", name))
	}
	return &boundContract{
		name:    name,
		address: address,
		binding: newBinding(),
		chain:   chain,
	}
}

func (c *boundContract) pack(method string, args ...any) ([]byte, error) {
	data, err := c.binding.TryPack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s.%s: %w", c.name, method, err)
	}
	return data, nil
}

func (c *boundContract) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.pack(method, args...)
	if err != nil {
		return nil, err
	}
	out, err := c.chain.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s.%s: %w", c.name, method, err)
	}
	values, err := c.binding.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s.%s: %w", c.name, method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s.%s returned nothing", c.name, method)
	}
	return values, nil
}

func (c *boundContract) callAddress(ctx context.Context, method string, args ...any) (common.Address, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *boundContract) callBool(ctx context.Context, method string, args ...any) (bool, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *boundContract) callBig(ctx context.Context, method string, args ...any) (*big.Int, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	switch v := out[0].(type) {
	case *big.Int:
		return v, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fmt.Errorf("%s.%s returned %T, expected an integer", c.name, method, out[0])
	}
}

func (c *boundContract) callUint(ctx context.Context, method string, args ...any) (uint64, error) {
	n, err := c.callBig(ctx, method, args...)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%s.%s returned %s, which overflows uint64", c.name, method, n)
	}
	return n.Uint64(), nil
}

// countEvents counts receipt logs emitted by this contract
func (c *boundContract) countEvents(receipt *types.Receipt) int {
	n := 0
	for _, l := range receipt.Logs {
		if l.Address == c.address {
			n++
		}
	}
	return n
}

// transact sends a call to the contract and returns its receipt
func (c *boundContract) transact(ctx context.Context, tx *Transactor, method string, args ...any) (*types.Receipt, error) {
	data, err := c.pack(method, args...)
	if err != nil {
		return nil, err
	}
	return tx.Transact(ctx, fmt.Sprintf("%s.%s", c.name, method), &c.address, data)
}

// transition sends a state change and requires exactly one event from the contract
func (c *boundContract) transition(ctx context.Context, tx *Transactor, method string, args ...any) (*types.Receipt, error) {
	receipt, err := c.transact(ctx, tx, method, args...)
	if err != nil {
		return nil, err
	}
	if n := c.countEvents(receipt); n != 1 {
		return nil, &domain.UnexpectedEventCountError{Contract: c.name, Method: method, Expected: 1, Actual: n}
	}
	return receipt, nil
}
