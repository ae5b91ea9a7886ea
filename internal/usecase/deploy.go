package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/bindings"
)

// DeployParams contains parameters for deploying the contract set
type DeployParams struct {
	DeployType domain.DeploymentType
	// Steps is how many steps of the sequence to run. Values above the
	// sequence length run everything.
	Steps   int
	Create2 bool
}

// DeployContracts runs the numbered deployment sequence. Every step reads
// chain state first and only writes when something is missing, so a
// rerun against a complete deployment sends no transactions.
type DeployContracts struct {
	env      *Environment
	searcher *SaltSearcher
	audit    AuditWriter
}

// NewDeployContracts creates a new DeployContracts use case
func NewDeployContracts(env *Environment, searcher *SaltSearcher, audit AuditWriter) *DeployContracts {
	return &DeployContracts{
		env:      env,
		searcher: searcher,
		audit:    audit,
	}
}

// Run executes the first params.Steps steps. On an address mismatch the
// partial result is returned together with an AddressMismatchError.
func (uc *DeployContracts) Run(ctx context.Context, params DeployParams) (*domain.PartialDeployment, error) {
	if params.Steps < 0 {
		return nil, fmt.Errorf("steps must not be negative: %d", params.Steps)
	}
	result := domain.NewPartialDeployment()
	if params.Steps == 0 {
		return result, nil
	}

	session, err := uc.env.Open(ctx, params.DeployType)
	if err != nil {
		return nil, err
	}

	run := &deployRun{
		uc:      uc,
		session: session,
		create2: params.Create2,
		result:  result,
		signer:  session.Signer.Address(),
	}

	steps := run.steps()
	n := min(params.Steps, len(steps))
	for i := 0; i < n; i++ {
		step := domain.DeploymentSteps[i]
		uc.env.Log.Info(fmt.Sprintf("[%d/%d] %s", step.Number, len(steps), step.Description))
		uc.env.Sink.OnProgress(ctx, ProgressEvent{
			Stage:   "deploy",
			Current: step.Number,
			Total:   len(steps),
			Message: step.Description,
		})
		if err := steps[i](ctx); err != nil {
			return result, fmt.Errorf("step %d (%s) failed: %w", step.Number, step.Description, err)
		}
		result.StepsRun = step.Number
	}

	totals, err := session.Close(ctx)
	if err != nil {
		return result, err
	}
	result.GasUsed = totals.GasUsed
	result.Spent = totals.Spent

	if err := run.checkAddresses(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// deployRun holds the state of one Run
type deployRun struct {
	uc      *DeployContracts
	session *Session
	create2 bool
	result  *domain.PartialDeployment
	signer  common.Address
}

func (r *deployRun) steps() []func(context.Context) error {
	return []func(context.Context) error{
		r.deployStep(domain.ImmutableCreate2Factory),
		r.deployStep(domain.OwnerProxy),
		r.transferOwnerProxy,
		r.deployStep(domain.OpenAvatarGen0Assets),
		r.deployStep(domain.OpenAvatarGen0RendererRegistry),
		r.deployStep(domain.OpenAvatarGen0Renderer),
		r.deployStep(domain.OpenAvatarGen0Token),
		r.deployStep(domain.OpenAvatarGen0TextRecords),
		r.deployStep(domain.OpenAvatarGen0ProfilePictureRenderer),
		r.wireStep(domain.OpenAvatarGen0Renderer, "getOpenAvatarGen0Assets", domain.OpenAvatarGen0Assets),
		r.wireStep(domain.OpenAvatarGen0TextRecords, "getOpenAvatarGen0Token", domain.OpenAvatarGen0Token),
		r.wireStep(domain.OpenAvatarGen0RendererRegistry, "getOpenAvatarGen0TextRecords", domain.OpenAvatarGen0TextRecords),
		r.wireStep(domain.OpenAvatarGen0Token, "getOpenAvatarGen0RendererRegistry", domain.OpenAvatarGen0RendererRegistry),
		r.initializeProfilePictureRenderer,
		r.registerRenderer(domain.RendererKeyBase, domain.OpenAvatarGen0Renderer, 0),
		r.registerRenderer(domain.RendererKeyPfp, domain.OpenAvatarGen0ProfilePictureRenderer, 1),
		r.setDefaultRenderer,
		r.exampleOnly(r.deployStep(domain.OpenAvatarGen0ExampleMutableCanvasRenderer)),
		r.exampleOnly(r.wireStep(domain.OpenAvatarGen0ExampleMutableCanvasRenderer, "getOpenAvatarGen0Assets", domain.OpenAvatarGen0Assets)),
	}
}

// resolve returns the address deployed in this run, else the configured one
func (r *deployRun) resolve(name domain.ContractName) common.Address {
	if addr, ok := r.result.Address(name); ok {
		return addr
	}
	if name == domain.ImmutableCreate2Factory {
		return r.session.Deployment.AddressOf(name, false)
	}
	return r.session.Deployment.AddressOf(name, r.create2)
}

func (r *deployRun) contract(name domain.ContractName) *boundContract {
	return newBoundContract(name, r.resolve(name), r.uc.env.Chain)
}

func (r *deployRun) deployStep(name domain.ContractName) func(context.Context) error {
	return func(ctx context.Context) error {
		deployed, err := r.deployIfAbsent(ctx, name)
		if err != nil {
			return err
		}
		r.result.Contracts = append(r.result.Contracts, *deployed)
		return nil
	}
}

func (r *deployRun) deployIfAbsent(ctx context.Context, name domain.ContractName) (*domain.DeployedContract, error) {
	cfg, err := r.session.Deployment.Contract(name)
	if err != nil {
		return nil, err
	}
	args, err := r.session.Deployment.ConstructorArgs(name, r.resolve)
	if err != nil {
		return nil, err
	}
	input, err := domain.NewCreate2Input(name, cfg.ABI, cfg.Bytecode, args)
	if err != nil {
		return nil, err
	}

	// the factory cannot deploy itself
	if !r.create2 || name == domain.ImmutableCreate2Factory {
		return r.deployLegacy(ctx, cfg, input)
	}
	return r.deployCreate2(ctx, cfg, input)
}

func (r *deployRun) deployLegacy(ctx context.Context, cfg *domain.ContractConfig, input *domain.Create2Input) (*domain.DeployedContract, error) {
	log := r.uc.env.Log
	log.Info(fmt.Sprintf("Checking for %s at %s...", cfg.Name, cfg.NonCreate2Address.Hex()))
	code, err := r.uc.env.Chain.CodeAt(ctx, cfg.NonCreate2Address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", cfg.NonCreate2Address.Hex(), err)
	}
	if len(code) > 0 {
		log.Info(fmt.Sprintf("Found %s at %s", cfg.Name, cfg.NonCreate2Address.Hex()))
		return &domain.DeployedContract{Name: cfg.Name, Address: cfg.NonCreate2Address}, nil
	}

	if len(input.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: no bytecode for %s", domain.ErrArtifactsMissing, cfg.Name)
	}
	receipt, err := r.session.Tx.Transact(ctx, fmt.Sprintf("Deploying %s", cfg.Name), nil, input.InitCode)
	if err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("Deployed %s to %s", cfg.Name, receipt.ContractAddress.Hex()))
	return &domain.DeployedContract{
		Name:     cfg.Name,
		Address:  receipt.ContractAddress,
		Deployed: true,
		TxHash:   receipt.TxHash,
		GasUsed:  receipt.GasUsed,
	}, nil
}

func (r *deployRun) deployCreate2(ctx context.Context, cfg *domain.ContractConfig, input *domain.Create2Input) (*domain.DeployedContract, error) {
	log := r.uc.env.Log
	factory := r.resolve(domain.ImmutableCreate2Factory)

	search, err := r.uc.searcher.Search(ctx, SaltSearchParams{
		Factory:      factory,
		Input:        input,
		FirstSalt:    cfg.BestKnownSalt,
		AttemptLimit: 1,
		Expected:     cfg.Create2Address,
	})
	if err != nil {
		return nil, err
	}
	found := search.Found

	record := &domain.Create2Record{Input: input, Address: found, Signer: r.signer}
	r.result.Create2[cfg.Name] = record
	if err := r.uc.audit.WriteCreate2Record(ctx, cfg.Name, record); err != nil {
		log.Warn("failed to write create2 record", "contract", cfg.Name, "error", err)
	}

	onchain, err := r.findCreate2Address(ctx, factory, found.SaltBytes32, input.InitCode)
	if err != nil {
		return nil, err
	}
	if onchain == (common.Address{}) {
		log.Info(fmt.Sprintf("Found %s at %s", cfg.Name, found.Address.Hex()))
		return &domain.DeployedContract{Name: cfg.Name, Address: found.Address}, nil
	}
	if onchain != found.Address {
		log.Warn(strings.Repeat("!", 80))
		log.Warn("factory computed a different CREATE2 address", "contract", cfg.Name, "factory", onchain.Hex(), "local", found.Address.Hex())
		log.Warn(strings.Repeat("!", 80))
	}

	if len(input.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: no bytecode for %s", domain.ErrArtifactsMissing, cfg.Name)
	}
	data, err := bindings.NewImmutableCreate2Factory().TryPackSafeCreate2(found.SaltBytes32, input.InitCode)
	if err != nil {
		return nil, fmt.Errorf("failed to pack safeCreate2: %w", err)
	}
	receipt, err := r.session.Tx.Transact(ctx, fmt.Sprintf("Deploying %s with CREATE2", cfg.Name), &factory, data)
	if err != nil {
		return nil, err
	}

	after, err := r.findCreate2Address(ctx, factory, found.SaltBytes32, input.InitCode)
	if err != nil {
		return nil, err
	}
	if after != (common.Address{}) {
		return nil, fmt.Errorf("%w: %s still free at %s", domain.ErrCreate2NotDeployed, cfg.Name, after.Hex())
	}
	log.Info(fmt.Sprintf("Deployed %s to %s", cfg.Name, found.Address.Hex()))
	return &domain.DeployedContract{
		Name:     cfg.Name,
		Address:  found.Address,
		Deployed: true,
		TxHash:   receipt.TxHash,
		GasUsed:  receipt.GasUsed,
	}, nil
}

func (r *deployRun) findCreate2Address(ctx context.Context, factory common.Address, salt common.Hash, initCode []byte) (common.Address, error) {
	f := bindings.NewImmutableCreate2Factory()
	data, err := f.TryPackFindCreate2Address(salt, initCode)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack findCreate2Address: %w", err)
	}
	out, err := r.uc.env.Chain.CallContract(ctx, ethereum.CallMsg{To: &factory, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to call findCreate2Address: %w", err)
	}
	return f.UnpackFindCreate2Address(out)
}

// wireStep points name at dep through initialize when the getter still
// returns the zero address
func (r *deployRun) wireStep(name domain.ContractName, getter string, dep domain.ContractName) func(context.Context) error {
	return func(ctx context.Context) error {
		c := r.contract(name)
		expected := r.resolve(dep)
		existing, err := c.callAddress(ctx, getter)
		if err != nil {
			return err
		}

		switch existing {
		case expected:
			r.uc.env.Log.Info(fmt.Sprintf("%s.%s: Match", name, getter), "address", existing.Hex())
			return nil
		case common.Address{}:
		default:
			return &domain.DependencyMismatchError{Contract: name, Dependency: dep, Existing: existing, Expected: expected}
		}

		if _, err := c.transact(ctx, r.session.Tx, "initialize", expected); err != nil {
			return err
		}
		if existing, err = c.callAddress(ctx, getter); err != nil {
			return err
		}
		if existing != expected {
			return &domain.DependencyMismatchError{Contract: name, Dependency: dep, Existing: existing, Expected: expected}
		}
		return nil
	}
}

func (r *deployRun) transferOwnerProxy(ctx context.Context) error {
	log := r.uc.env.Log
	proxy := r.contract(domain.OwnerProxy)
	owner, err := proxy.callAddress(ctx, "owner")
	if err != nil {
		return err
	}

	if owner == r.signer {
		log.Info("OwnerProxy already owned by signer, skipping", "owner", owner.Hex())
		return nil
	}
	if owner == domain.HardhatDefaultDeployer {
		dev, err := r.uc.env.Senders.FromPrivateKey(ctx, domain.HardhatDefaultPrivateKey)
		if err != nil {
			return fmt.Errorf("failed to load development key: %w", err)
		}
		log.Info("Transferring OwnerProxy ownership", "from", owner.Hex(), "to", r.signer.Hex())
		if _, err := proxy.transition(ctx, r.session.Tx.WithSender(dev), "transferOwnership", r.signer); err != nil {
			return err
		}
		if owner, err = proxy.callAddress(ctx, "owner"); err != nil {
			return err
		}
	}
	if owner != r.signer {
		return fmt.Errorf("%w: OwnerProxy owner is %s but signer is: %s", domain.ErrNotOwner, owner.Hex(), r.signer.Hex())
	}
	return nil
}

func (r *deployRun) initializeProfilePictureRenderer(ctx context.Context) error {
	pfp := r.contract(domain.OpenAvatarGen0ProfilePictureRenderer)
	initialized, err := pfp.callBool(ctx, "isInitialized")
	if err != nil {
		return err
	}
	if initialized {
		r.uc.env.Log.Info("OpenAvatarGen0ProfilePictureRenderer already initialized")
		return nil
	}
	_, err = pfp.transact(ctx, r.session.Tx, "initialize",
		r.resolve(domain.OpenAvatarGen0Assets),
		r.resolve(domain.OpenAvatarGen0Renderer),
		r.resolve(domain.OpenAvatarGen0Token),
		r.resolve(domain.OpenAvatarGen0TextRecords),
	)
	return err
}

// registerRenderer adds renderer under key when the registry holds exactly
// position renderers, otherwise the key must already point at it
func (r *deployRun) registerRenderer(key string, renderer domain.ContractName, position uint64) func(context.Context) error {
	return func(ctx context.Context) error {
		registry := r.contract(domain.OpenAvatarGen0RendererRegistry)
		expected := r.resolve(renderer)
		count, err := registry.callUint(ctx, "getNumRenderers")
		if err != nil {
			return err
		}

		if count < position {
			return fmt.Errorf("registry holds %d renderers, cannot register %q at position %d", count, key, position)
		}
		if count == position {
			_, err := registry.transact(ctx, r.session.Tx, "addRenderer", key, expected)
			return err
		}

		existing, err := registry.callAddress(ctx, "getRendererByKey", key)
		if err != nil {
			return err
		}
		if existing != expected {
			return &domain.DependencyMismatchError{Contract: domain.OpenAvatarGen0RendererRegistry, Dependency: renderer, Existing: existing, Expected: expected}
		}
		r.uc.env.Log.Info(fmt.Sprintf("Renderer %q: Match", key), "address", existing.Hex())
		return nil
	}
}

func (r *deployRun) setDefaultRenderer(ctx context.Context) error {
	registry := r.contract(domain.OpenAvatarGen0RendererRegistry)
	pfp := r.resolve(domain.OpenAvatarGen0ProfilePictureRenderer)
	current, err := registry.callAddress(ctx, "getDefaultRenderer")
	if err != nil {
		return err
	}
	if current == pfp {
		r.uc.env.Log.Info("Default renderer already set", "key", domain.RendererKeyPfp)
		return nil
	}
	_, err = registry.transition(ctx, r.session.Tx, "setDefaultRendererByKey", domain.RendererKeyPfp)
	return err
}

// exampleOnly skips step unless this is a local network signed by the
// development account
func (r *deployRun) exampleOnly(step func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		if r.uc.env.Guard.IsPublic() || r.signer != domain.HardhatDefaultDeployer {
			r.uc.env.Log.Info("Skip deploying example renderer on public network")
			return nil
		}
		return step(ctx)
	}
}

// checkAddresses compares every contract reached in this run with its
// configured address and writes the fix script on mismatch
func (r *deployRun) checkAddresses(ctx context.Context) error {
	for _, c := range r.result.Contracts {
		create2 := r.create2 && c.Name != domain.ImmutableCreate2Factory
		configured := r.session.Deployment.AddressOf(c.Name, create2)
		if configured == c.Address {
			continue
		}
		r.uc.env.Log.Error("address mismatch", "contract", c.Name, "configured", configured.Hex(), "computed", c.Address.Hex())
		r.result.Mismatches = append(r.result.Mismatches, domain.AddressMismatch{
			Contract:   c.Name,
			Configured: configured,
			Computed:   c.Address,
		})
	}
	if len(r.result.Mismatches) == 0 {
		return nil
	}

	path, err := r.uc.audit.WriteFixScript(ctx, r.result.Mismatches)
	if err != nil {
		return fmt.Errorf("failed to write fix script: %w", err)
	}
	return &domain.AddressMismatchError{Mismatches: r.result.Mismatches, ScriptPath: path}
}
