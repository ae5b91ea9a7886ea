package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"reflect"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/bindings"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/logging"
	"github.com/stretchr/testify/require"
)

var (
	errRevert    = errors.New("execution reverted")
	testGasPrice = big.NewInt(1_000_000_000)
)

func testLogger() *slog.Logger {
	return logging.NewNopLogger()
}

func testBytecode(name domain.ContractName) []byte {
	return []byte("bytecode:" + string(name) + ";")
}

func bindingABI(name domain.ContractName) *abi.ABI {
	if name == domain.ImmutableCreate2Factory {
		return bindings.NewImmutableCreate2Factory().ABI()
	}
	return contractBindings[name]().ABI()
}

// fakeContract is the in-memory state of one deployed contract
type fakeContract struct {
	name  domain.ContractName
	owner common.Address

	dep         common.Address
	initialized bool

	renderers       []fakeRenderer
	defaultRenderer common.Address
	// silent makes state changes emit no events
	silent bool

	softCap     uint16
	price       *big.Int
	mintState   uint8
	totalSupply uint64

	palettes map[uint8]int
	canvases map[uint8]bool
	layers   map[uint8]int
	patterns map[[2]uint8]int
}

type fakeRenderer struct {
	key  string
	addr common.Address
}

func newFakeContract(name domain.ContractName, from common.Address, ctorArgs []any) *fakeContract {
	c := &fakeContract{
		name:      name,
		owner:     from,
		price:     new(big.Int),
		mintState: uint8(domain.MintDisabled),
		palettes:  map[uint8]int{},
		canvases:  map[uint8]bool{},
		layers:    map[uint8]int{},
		patterns:  map[[2]uint8]int{},
	}
	if name == domain.OwnerProxy && len(ctorArgs) == 1 {
		c.owner = ctorArgs[0].(common.Address)
	}
	return c
}

func (c *fakeContract) numPaletteCodes() uint64 {
	var n uint64
	for code := range c.palettes {
		n = max(n, uint64(code)+1)
	}
	return n
}

func (c *fakeContract) view(method string, args []any) ([]any, error) {
	switch method {
	case "owner":
		return []any{c.owner}, nil
	case "getOpenAvatarGen0Assets", "getOpenAvatarGen0Token", "getOpenAvatarGen0TextRecords", "getOpenAvatarGen0RendererRegistry":
		return []any{c.dep}, nil
	case "isInitialized":
		return []any{c.initialized}, nil
	case "getNumRenderers":
		return []any{big.NewInt(int64(len(c.renderers)))}, nil
	case "getRendererByKey":
		for _, r := range c.renderers {
			if r.key == args[0].(string) {
				return []any{r.addr}, nil
			}
		}
		return nil, errRevert
	case "getDefaultRenderer":
		return []any{c.defaultRenderer}, nil
	case "supplySoftCap":
		return []any{c.softCap}, nil
	case "getMintPrice":
		return []any{new(big.Int).Set(c.price)}, nil
	case "getMintState":
		return []any{c.mintState}, nil
	case "totalSupply":
		return []any{new(big.Int).SetUint64(c.totalSupply)}, nil
	case "getNumPaletteCodes":
		return []any{new(big.Int).SetUint64(c.numPaletteCodes())}, nil
	case "getNumPalettes":
		return []any{big.NewInt(int64(c.palettes[args[0].(uint8)]))}, nil
	case "hasCanvas":
		return []any{c.canvases[args[0].(uint8)]}, nil
	case "getNumLayers":
		return []any{big.NewInt(int64(c.layers[args[0].(uint8)]))}, nil
	case "getNumPatterns":
		key := [2]uint8{args[0].(uint8), args[1].(uint8)}
		return []any{big.NewInt(int64(c.patterns[key]))}, nil
	}
	return nil, fmt.Errorf("fake %s has no view %s", c.name, method)
}

// write applies a state change and returns the number of events emitted
func (c *fakeContract) write(from common.Address, method string, args []any) (int, error) {
	events, err := c.apply(from, method, args)
	if c.silent {
		events = 0
	}
	return events, err
}

func (c *fakeContract) apply(from common.Address, method string, args []any) (int, error) {
	switch method {
	case "transferOwnership":
		if from != c.owner {
			return 0, errRevert
		}
		c.owner = args[0].(common.Address)
		return 1, nil
	case "initialize":
		if c.name == domain.OpenAvatarGen0ProfilePictureRenderer {
			c.initialized = true
		} else {
			c.dep = args[0].(common.Address)
		}
		return 1, nil
	case "addRenderer":
		c.renderers = append(c.renderers, fakeRenderer{key: args[0].(string), addr: args[1].(common.Address)})
		return 1, nil
	case "setDefaultRendererByKey":
		for _, r := range c.renderers {
			if r.key == args[0].(string) {
				c.defaultRenderer = r.addr
				return 1, nil
			}
		}
		return 0, errRevert
	case "increaseSupplySoftCap":
		v := args[0].(uint16)
		if v <= c.softCap {
			return 0, errRevert
		}
		c.softCap = v
		return 1, nil
	case "setMintPrice":
		c.price = new(big.Int).Set(args[0].(*big.Int))
		return 1, nil
	case "setMintState":
		c.mintState = args[0].(uint8)
		return 1, nil
	case "uploadPaletteBatches":
		return c.uploadPalettes(args[0])
	case "addCanvas":
		id := uint8(reflect.ValueOf(args[0]).FieldByName("Id").Uint())
		if c.canvases[id] {
			return 0, errRevert
		}
		c.canvases[id] = true
		return 1, nil
	case "addLayers":
		canvas, layers := args[0].(uint8), args[1].([]uint8)
		c.layers[canvas] += len(layers)
		return len(layers), nil
	case "uploadPatterns":
		return c.uploadPatterns(args[0])
	}
	return 0, fmt.Errorf("fake %s has no method %s", c.name, method)
}

func (c *fakeContract) uploadPalettes(arg any) (int, error) {
	batches := reflect.ValueOf(arg)
	events := 0
	for i := 0; i < batches.Len(); i++ {
		b := batches.Index(i)
		code := uint8(b.FieldByName("Code").Uint())
		from := int(b.FieldByName("FromIndex").Uint())
		if from != c.palettes[code] {
			return 0, errRevert
		}
		n := b.FieldByName("Palettes").Len()
		c.palettes[code] += n
		events += n
	}
	return events, nil
}

func (c *fakeContract) uploadPatterns(arg any) (int, error) {
	inputs := reflect.ValueOf(arg)
	for i := 0; i < inputs.Len(); i++ {
		in := inputs.Index(i)
		key := [2]uint8{uint8(in.FieldByName("CanvasId").Uint()), uint8(in.FieldByName("Layer").Uint())}
		if int(in.FieldByName("Index").Uint()) != c.patterns[key] {
			return 0, errRevert
		}
		c.patterns[key]++
	}
	return inputs.Len(), nil
}

// fakeChain is an in-memory chain that executes calls against fakeContracts
type fakeChain struct {
	mu sync.Mutex

	chainID   uint64
	block     uint64
	baseFee   *big.Int
	tip       *big.Int
	balances  map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	code      map[common.Address][]byte
	contracts map[common.Address]*fakeContract
	factories map[common.Address]bool
	receipts  map[*types.Transaction]*types.Receipt
	sent      []sentTx

	blockNumberErrs int
	blockNumberHits int
	calls           int
	estimate        func(msg ethereum.CallMsg) (uint64, error)
}

type sentTx struct {
	from     common.Address
	to       *common.Address
	method   string
	gasLimit uint64
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		chainID:   31337,
		block:     1,
		baseFee:   big.NewInt(10_000_000_000),
		tip:       big.NewInt(1_000_000_000),
		balances:  map[common.Address]*big.Int{},
		nonces:    map[common.Address]uint64{},
		code:      map[common.Address][]byte{},
		contracts: map[common.Address]*fakeContract{},
		factories: map[common.Address]bool{},
		receipts:  map[*types.Transaction]*types.Receipt{},
	}
}

func (f *fakeChain) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.chainID), nil
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blockNumberHits++
	if f.blockNumberErrs > 0 {
		f.blockNumberErrs--
		return 0, errors.New("connection refused")
	}
	return f.block, nil
}

func (f *fakeChain) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &types.Header{Number: new(big.Int).SetUint64(f.block), BaseFee: new(big.Int).Set(f.baseFee), Time: 1_700_000_000}, nil
}

func (f *fakeChain) BalanceAt(_ context.Context, account common.Address, _ *big.Int) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.balances[account]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18)), nil
}

func (f *fakeChain) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.code[account], nil
}

func (f *fakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if msg.To == nil {
		return nil, errors.New("call without target")
	}
	if f.factories[*msg.To] {
		return f.factoryView(*msg.To, msg.Data)
	}
	c, ok := f.contracts[*msg.To]
	if !ok {
		return nil, nil
	}
	method, args, err := decodeCall(bindingABI(c.name), msg.Data)
	if err != nil {
		return nil, err
	}
	out, err := c.view(method.Name, args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (f *fakeChain) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	if f.estimate != nil {
		return f.estimate(msg)
	}
	return 100_000, nil
}

func (f *fakeChain) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.tip), nil
}

func (f *fakeChain) WaitMined(_ context.Context, tx *types.Transaction) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.receipts[tx]
	if !ok {
		return nil, errors.New("unknown transaction")
	}
	return r, nil
}

func decodeCall(contractABI *abi.ABI, data []byte) (*abi.Method, []any, error) {
	if len(data) < 4 {
		return nil, nil, errors.New("calldata too short")
	}
	method, err := contractABI.MethodById(data[:4])
	if err != nil {
		return nil, nil, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}

func (f *fakeChain) factoryView(factory common.Address, data []byte) ([]byte, error) {
	method, args, err := decodeCall(bindingABI(domain.ImmutableCreate2Factory), data)
	if err != nil {
		return nil, err
	}
	if method.Name != "findCreate2Address" {
		return nil, fmt.Errorf("fake factory has no view %s", method.Name)
	}
	addr := f.create2Address(factory, args[0].([32]byte), args[1].([]byte))
	if len(f.code[addr]) > 0 {
		addr = common.Address{}
	}
	return method.Outputs.Pack(addr)
}

func (f *fakeChain) create2Address(factory common.Address, salt [32]byte, initCode []byte) common.Address {
	return crypto.CreateAddress2(factory, salt, crypto.Keccak256(initCode))
}

// deploy installs the contract whose test bytecode prefixes initCode
func (f *fakeChain) deploy(from, addr common.Address, initCode []byte) error {
	if len(f.code[addr]) > 0 {
		return errRevert
	}
	for _, name := range domain.AllContracts {
		prefix := testBytecode(name)
		if !bytes.HasPrefix(initCode, prefix) {
			continue
		}
		var args []any
		if ctor := bindingABI(name).Constructor; len(ctor.Inputs) > 0 {
			var err error
			if args, err = ctor.Inputs.Unpack(initCode[len(prefix):]); err != nil {
				return err
			}
		}
		f.code[addr] = prefix
		if name == domain.ImmutableCreate2Factory {
			f.factories[addr] = true
		} else {
			f.contracts[addr] = newFakeContract(name, from, args)
		}
		return nil
	}
	return fmt.Errorf("unknown init code")
}

func (f *fakeChain) send(from common.Address, req TxRequest) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	nonce := f.nonces[from]
	f.nonces[from]++
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   new(big.Int).SetUint64(f.chainID),
		Nonce:     nonce,
		To:        req.To,
		Data:      req.Data,
		Gas:       req.GasLimit,
		GasFeeCap: req.Gas.MaxFeePerGas,
		GasTipCap: req.Gas.MaxPriorityFeePerGas,
	})
	f.block++

	receipt := &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		TxHash:            tx.Hash(),
		GasUsed:           50_000,
		EffectiveGasPrice: new(big.Int).Set(testGasPrice),
		BlockNumber:       new(big.Int).SetUint64(f.block),
	}
	record := sentTx{from: from, to: req.To, gasLimit: req.GasLimit}

	var err error
	switch {
	case req.To == nil:
		record.method = "create"
		addr := crypto.CreateAddress(from, nonce)
		if err = f.deploy(from, addr, req.Data); err == nil {
			receipt.ContractAddress = addr
		}
	case f.factories[*req.To]:
		var method *abi.Method
		var args []any
		if method, args, err = decodeCall(bindingABI(domain.ImmutableCreate2Factory), req.Data); err == nil {
			record.method = method.Name
			salt, initCode := args[0].([32]byte), args[1].([]byte)
			err = f.deploy(from, f.create2Address(*req.To, salt, initCode), initCode)
		}
	default:
		c, ok := f.contracts[*req.To]
		if !ok {
			err = errRevert
			break
		}
		var method *abi.Method
		var args []any
		if method, args, err = decodeCall(bindingABI(c.name), req.Data); err != nil {
			break
		}
		record.method = method.Name
		var events int
		if events, err = c.write(from, method.Name, args); err == nil {
			for i := 0; i < events; i++ {
				receipt.Logs = append(receipt.Logs, &types.Log{Address: *req.To})
			}
		}
	}
	if err != nil {
		receipt.Status = types.ReceiptStatusFailed
		receipt.Logs = nil
	}

	f.sent = append(f.sent, record)
	f.receipts[tx] = receipt
	return tx, nil
}

func (f *fakeChain) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeChain) contractAt(t *testing.T, addr common.Address) *fakeContract {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[addr]
	require.True(t, ok, "no contract at %s", addr.Hex())
	return c
}

// fakeSender sends through the fake chain without signing
type fakeSender struct {
	address common.Address
	chain   *fakeChain
}

func (s *fakeSender) Address() common.Address { return s.address }

func (s *fakeSender) SendTransaction(_ context.Context, req TxRequest) (*types.Transaction, error) {
	return s.chain.send(s.address, req)
}

type fakeSenderFactory struct {
	deployer common.Address
	chain    *fakeChain
}

func (f *fakeSenderFactory) Deployer(context.Context) (TransactionSender, error) {
	return &fakeSender{address: f.deployer, chain: f.chain}, nil
}

func (f *fakeSenderFactory) FromPrivateKey(_ context.Context, hexKey string) (TransactionSender, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, err
	}
	return &fakeSender{address: crypto.PubkeyToAddress(key.PublicKey), chain: f.chain}, nil
}

type fakeConfigStore struct {
	deployment *domain.DeploymentConfig
	err        error
}

func (s *fakeConfigStore) Load(context.Context, domain.DeploymentType) (*domain.DeploymentConfig, error) {
	return s.deployment, s.err
}

type fakeAudit struct {
	records    map[domain.ContractName]*domain.Create2Record
	mismatches []domain.AddressMismatch
}

func newFakeAudit() *fakeAudit {
	return &fakeAudit{records: map[domain.ContractName]*domain.Create2Record{}}
}

func (a *fakeAudit) WriteCreate2Record(_ context.Context, name domain.ContractName, record *domain.Create2Record) error {
	a.records[name] = record
	return nil
}

func (a *fakeAudit) WriteFixScript(_ context.Context, mismatches []domain.AddressMismatch) (string, error) {
	a.mismatches = mismatches
	return "artifacts/fix_abi.sh", nil
}

// testDeployment builds a config whose CREATE2 addresses match what the
// fake chain derives from the test bytecode. The factory is expected at
// the deployer's first CREATE address.
func testDeployment(t *testing.T, deployer, proxyOwner common.Address) *domain.DeploymentConfig {
	t.Helper()
	factory := crypto.CreateAddress(deployer, 0)
	d := &domain.DeploymentConfig{
		Type:      domain.DeploymentTypeTest,
		Deployer:  deployer,
		Contracts: map[domain.ContractName]*domain.ContractConfig{},
	}

	var proxy common.Address
	for i, name := range domain.AllContracts {
		cfg := &domain.ContractConfig{
			Name:              name,
			ABI:               bindingABI(name),
			Bytecode:          testBytecode(name),
			NonCreate2Address: common.BigToAddress(big.NewInt(int64(0x2000 + i))),
			BestKnownSalt:     new(big.Int),
		}
		var args []any
		switch name {
		case domain.ImmutableCreate2Factory:
			cfg.NonCreate2Address = factory
			cfg.Create2Address = common.BigToAddress(big.NewInt(0x1000))
			d.Contracts[name] = cfg
			continue
		case domain.OwnerProxy:
			cfg.Args = []string{proxyOwner.Hex()}
			args = []any{proxyOwner}
		default:
			cfg.Args = []string{"@OwnerProxy"}
			args = []any{proxy}
		}
		input, err := domain.NewCreate2Input(name, cfg.ABI, cfg.Bytecode, args)
		require.NoError(t, err)
		cfg.Create2Address = domain.Derive(factory, common.Hash{}, input.InitCodeHash)
		if name == domain.OwnerProxy {
			proxy = cfg.Create2Address
		}
		d.Contracts[name] = cfg
	}
	require.NoError(t, d.Validate())
	return d
}

// harness wires use cases to a fake chain on a local network
type harness struct {
	chain      *fakeChain
	cfg        *config.RuntimeConfig
	deployment *domain.DeploymentConfig
	audit      *fakeAudit
	env        *Environment
	log        *slog.Logger
}

func newHarness(t *testing.T, deployer, proxyOwner common.Address) *harness {
	t.Helper()
	chain := newFakeChain()
	cfg := &config.RuntimeConfig{
		Network: &config.Network{Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545"},
		Local:   config.DefaultLocalNetworks(),
	}
	log := testLogger()
	guard := NewNetworkGuard(cfg, chain, nil, nil, log)
	guard.delay = 0
	deployment := testDeployment(t, deployer, proxyOwner)
	env := NewEnvironment(cfg, chain, &fakeSenderFactory{deployer: deployer, chain: chain},
		&fakeConfigStore{deployment: deployment}, guard, NopProgress{}, log)
	return &harness{
		chain:      chain,
		cfg:        cfg,
		deployment: deployment,
		audit:      newFakeAudit(),
		env:        env,
		log:        log,
	}
}

func newDevHarness(t *testing.T) *harness {
	return newHarness(t, domain.HardhatDefaultDeployer, domain.HardhatDefaultDeployer)
}

func (h *harness) deployer() *DeployContracts {
	return NewDeployContracts(h.env, NewSaltSearcher(h.log), h.audit)
}

// deployAll runs every deployment step in CREATE2 mode
func (h *harness) deployAll(t *testing.T) *domain.PartialDeployment {
	t.Helper()
	result, err := h.deployer().Run(context.Background(), DeployParams{
		DeployType: domain.DeploymentTypeTest,
		Steps:      100,
		Create2:    true,
	})
	require.NoError(t, err)
	return result
}

func (h *harness) create2(name domain.ContractName) common.Address {
	return h.deployment.AddressOf(name, true)
}
