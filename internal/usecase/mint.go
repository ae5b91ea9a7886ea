package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/openavatar/openavatar-deploy/internal/domain"
)

// ConfigureMintParams selects the token mint settings to apply. Nil fields
// are left untouched, except that a public state defaults the soft cap to
// PublicMintSupply and the price to PublicMintPriceEther.
type ConfigureMintParams struct {
	DeployType domain.DeploymentType
	Create2    bool
	State      *domain.MintState
	SoftCap    *uint16
	Price      *big.Int
}

// MintStatus is the token mint configuration read back from the chain
type MintStatus struct {
	State       domain.MintState
	SoftCap     uint64
	Price       *big.Int
	TotalSupply uint64
	Changed     []string
}

// ConfigureMint applies mint settings to the token as idempotent transitions
type ConfigureMint struct {
	env *Environment
}

// NewConfigureMint creates a new ConfigureMint use case
func NewConfigureMint(env *Environment) *ConfigureMint {
	return &ConfigureMint{env: env}
}

// Run reads each setting, writes only what differs and verifies the result
func (uc *ConfigureMint) Run(ctx context.Context, params ConfigureMintParams) (*MintStatus, error) {
	if params.State != nil && *params.State == domain.MintPublic {
		if params.SoftCap == nil {
			softCap := domain.PublicMintSupply
			params.SoftCap = &softCap
		}
		if params.Price == nil {
			price, err := domain.ParseEther(domain.PublicMintPriceEther)
			if err != nil {
				return nil, err
			}
			params.Price = price
		}
	}

	session, err := uc.env.Open(ctx, params.DeployType)
	if err != nil {
		return nil, err
	}
	token := session.Contract(domain.OpenAvatarGen0Token, params.Create2)
	if err := session.RequireOwner(ctx, token); err != nil {
		return nil, err
	}

	status := &MintStatus{}
	if params.Price != nil {
		if err := uc.setPrice(ctx, session, token, params.Price, status); err != nil {
			return nil, err
		}
	}
	if params.SoftCap != nil {
		if err := uc.setSoftCap(ctx, session, token, *params.SoftCap, status); err != nil {
			return nil, err
		}
	}
	if params.State != nil {
		if err := uc.setState(ctx, session, token, *params.State, status); err != nil {
			return nil, err
		}
	}

	if err := uc.readStatus(ctx, token, status); err != nil {
		return nil, err
	}
	if _, err := session.Close(ctx); err != nil {
		return nil, err
	}
	return status, nil
}

func (uc *ConfigureMint) setPrice(ctx context.Context, s *Session, token *boundContract, price *big.Int, status *MintStatus) error {
	current, err := token.callBig(ctx, "getMintPrice")
	if err != nil {
		return err
	}
	if current.Cmp(price) == 0 {
		uc.env.Log.Info("Mint price already set", "price", domain.FormatEther(price)+" ETH")
		return nil
	}
	if _, err := token.transition(ctx, s.Tx, "setMintPrice", price); err != nil {
		return err
	}
	if current, err = token.callBig(ctx, "getMintPrice"); err != nil {
		return err
	}
	if current.Cmp(price) != 0 {
		return fmt.Errorf("mint price is %s after setting it to %s", current, price)
	}
	status.Changed = append(status.Changed, "price")
	return nil
}

func (uc *ConfigureMint) setSoftCap(ctx context.Context, s *Session, token *boundContract, softCap uint16, status *MintStatus) error {
	current, err := token.callUint(ctx, "supplySoftCap")
	if err != nil {
		return err
	}
	target := uint64(softCap)
	switch {
	case current == target:
		uc.env.Log.Info("Supply soft cap already set", "softCap", target)
		return nil
	case current > target:
		return fmt.Errorf("supply soft cap is %d and can only be increased, requested %d", current, target)
	}

	if _, err := token.transition(ctx, s.Tx, "increaseSupplySoftCap", softCap); err != nil {
		return err
	}
	if current, err = token.callUint(ctx, "supplySoftCap"); err != nil {
		return err
	}
	if current != target {
		return fmt.Errorf("supply soft cap is %d after setting it to %d", current, target)
	}
	status.Changed = append(status.Changed, "softCap")
	return nil
}

func (uc *ConfigureMint) setState(ctx context.Context, s *Session, token *boundContract, state domain.MintState, status *MintStatus) error {
	current, err := token.callUint(ctx, "getMintState")
	if err != nil {
		return err
	}
	if domain.MintState(current) == state {
		uc.env.Log.Info("Mint state already set", "state", state)
		return nil
	}
	if domain.MintState(current) == domain.MintPermanentlyDisabled {
		return fmt.Errorf("mint is permanently disabled")
	}

	if _, err := token.transition(ctx, s.Tx, "setMintState", uint8(state)); err != nil {
		return err
	}
	if current, err = token.callUint(ctx, "getMintState"); err != nil {
		return err
	}
	if domain.MintState(current) != state {
		return fmt.Errorf("mint state is %s after setting it to %s", domain.MintState(current), state)
	}
	status.Changed = append(status.Changed, "state")
	return nil
}

func (uc *ConfigureMint) readStatus(ctx context.Context, token *boundContract, status *MintStatus) error {
	state, err := token.callUint(ctx, "getMintState")
	if err != nil {
		return err
	}
	status.State = domain.MintState(state)
	if status.SoftCap, err = token.callUint(ctx, "supplySoftCap"); err != nil {
		return err
	}
	if status.Price, err = token.callBig(ctx, "getMintPrice"); err != nil {
		return err
	}
	if status.TotalSupply, err = token.callUint(ctx, "totalSupply"); err != nil {
		return err
	}
	return nil
}
