package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/samber/lo"
)

const (
	progressInterval = 1_000_000
	cancelInterval   = 4096
)

// SaltSearchParams configures one salt search
type SaltSearchParams struct {
	Factory            common.Address
	Input              *domain.Create2Input
	TargetLeadingZeros int
	FirstSalt          *big.Int
	AttemptLimit       uint64
	// Expected is the configured address. The zero address disables the
	// attempt-0 check.
	Expected common.Address
}

// SaltSearcher brute-forces CREATE2 salts for addresses with leading zeros
type SaltSearcher struct {
	log *slog.Logger
	now func() time.Time
}

// NewSaltSearcher creates a new SaltSearcher
func NewSaltSearcher(log *slog.Logger) *SaltSearcher {
	return &SaltSearcher{log: log, now: time.Now}
}

// Search tries salts firstSalt, firstSalt+1, ... and keeps the first salt
// with the most leading zeros. It stops once the target is reached or the
// attempt limit is used up. When ctx is cancelled the best candidate so far
// is returned together with the context error.
func (s *SaltSearcher) Search(ctx context.Context, p SaltSearchParams) (*domain.Create2AddressSearch, error) {
	if err := validateSearch(p); err != nil {
		return nil, err
	}
	res, err := s.searchRange(ctx, p, 0, 1, p.AttemptLimit, true, nil)
	if err != nil && !isCancellation(err) {
		return nil, err
	}
	out := &domain.Create2AddressSearch{
		Found:    res.found,
		Expected: p.Expected,
		Matches:  res.last == p.Expected,
		Attempts: res.attempts,
	}
	s.logOutcome(out, p, err)
	return out, err
}

// SearchParallel splits the search over workers interleaved salt ranges.
// Worker w tries firstSalt+w, firstSalt+w+workers, ... Zero counts are
// capped at the target when merging and ties go to the lowest salt, so the
// result is the one Search would return. Once a worker reaches the target,
// the others stop past that salt.
func (s *SaltSearcher) SearchParallel(ctx context.Context, p SaltSearchParams, workers int) (*domain.Create2AddressSearch, error) {
	if workers <= 1 || p.AttemptLimit <= 1 {
		return s.Search(ctx, p)
	}
	if err := validateSearch(p); err != nil {
		return nil, err
	}
	workers = int(min(uint64(workers), p.AttemptLimit))

	var cutoff atomic.Uint64
	cutoff.Store(math.MaxUint64)

	results := make([]*rangeResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			count := (p.AttemptLimit - uint64(w) + uint64(workers) - 1) / uint64(workers)
			results[w], errs[w] = s.searchRange(ctx, p, uint64(w), uint64(workers), count, w == 0, &cutoff)
		}(w)
	}
	wg.Wait()

	if err, ok := lo.Find(errs, func(err error) bool { return err != nil && !isCancellation(err) }); ok {
		return nil, err
	}
	ctxErr, _ := lo.Find(errs, func(err error) bool { return err != nil })

	out := &domain.Create2AddressSearch{Expected: p.Expected}
	for _, r := range results {
		out.Attempts += r.attempts
		if r.found == nil {
			continue
		}
		if out.Found == nil || better(r.found, out.Found, p.TargetLeadingZeros) {
			out.Found = r.found
		}
	}
	if out.Found != nil {
		out.Matches = out.Found.Address == p.Expected
	}
	s.logOutcome(out, p, ctxErr)
	return out, ctxErr
}

// better orders candidates the way a sequential search meets them: zero
// counts at or above the target are equal, then the lower salt wins.
func better(a, b *domain.Create2Address, target int) bool {
	za, zb := min(a.LeadingZeros(), target), min(b.LeadingZeros(), target)
	if za != zb {
		return za > zb
	}
	return a.Salt.Cmp(b.Salt) < 0
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *SaltSearcher) logOutcome(res *domain.Create2AddressSearch, p SaltSearchParams, err error) {
	switch {
	case err != nil:
		s.log.Warn(fmt.Sprintf("Search stopped after %s attempts", domain.FmtCommas(res.Attempts)), "error", err)
	case res.Found != nil && res.Found.LeadingZeros() < p.TargetLeadingZeros:
		s.log.Info(fmt.Sprintf("Reached limit of %s attempts", domain.FmtCommas(p.AttemptLimit)))
	}
}

func validateSearch(p SaltSearchParams) error {
	if p.Input == nil {
		return fmt.Errorf("salt search needs an init code")
	}
	if p.AttemptLimit == 0 {
		return fmt.Errorf("attempt limit must be positive")
	}
	first := p.FirstSalt
	if first == nil {
		first = new(big.Int)
	}
	last := new(big.Int).Add(first, new(big.Int).SetUint64(p.AttemptLimit-1))
	if _, err := domain.SaltFromBig(last); err != nil {
		return fmt.Errorf("salt range starting at %s: %w", first, err)
	}
	return nil
}

type rangeResult struct {
	found    *domain.Create2Address
	last     common.Address
	attempts uint64
}

// searchRange tries count salts starting at firstSalt+offset with the given
// stride. Only the range holding attempt 0 checks the expected address.
// A non-nil cutoff is shared between ranges: it holds the lowest attempt
// index that reached the target, and ranges stop once they pass it. On
// cancellation the partial result is returned with the context error.
func (s *SaltSearcher) searchRange(ctx context.Context, p SaltSearchParams, offset, stride, count uint64, reportProgress bool, cutoff *atomic.Uint64) (*rangeResult, error) {
	name := p.Input.ContractName
	salt := new(big.Int).SetUint64(offset)
	if p.FirstSalt != nil {
		salt.Add(salt, p.FirstSalt)
	}
	step := new(big.Int).SetUint64(stride)

	// 0xff ++ factory ++ salt ++ keccak256(initCode)
	var buf [1 + common.AddressLength + common.HashLength + common.HashLength]byte
	buf[0] = 0xff
	copy(buf[1:], p.Factory.Bytes())
	copy(buf[1+common.AddressLength+common.HashLength:], p.Input.InitCodeHash.Bytes())
	saltBuf := buf[1+common.AddressLength : 1+common.AddressLength+common.HashLength]

	hasher := crypto.NewKeccakState()
	var digest common.Hash

	res := &rangeResult{}
	best := -1
	start := s.now()

	for i := uint64(0); i < count; i++ {
		attempt := offset + i*stride
		if cutoff != nil && attempt > cutoff.Load() {
			break
		}
		// attempt 0 always runs so a cancelled search still has a candidate
		if i > 0 && i%cancelInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		salt.FillBytes(saltBuf)
		hasher.Reset()
		hasher.Write(buf[:])
		hasher.Read(digest[:])
		addr := common.BytesToAddress(digest[12:])
		res.last = addr
		res.attempts++

		if offset == 0 && i == 0 {
			if err := s.checkExpected(name, addr, p.Expected); err != nil {
				return nil, err
			}
		}

		if zeros := domain.LeadingZeros(addr); zeros > best {
			best = zeros
			res.found = &domain.Create2Address{
				ContractName:   name,
				FactoryAddress: p.Factory,
				Salt:           new(big.Int).Set(salt),
				SaltBytes32:    common.BytesToHash(saltBuf),
				InitCodeHash:   p.Input.InitCodeHash,
				Address:        addr,
			}
			s.log.Info(fmt.Sprintf("%d/%d %s w/ salt %s => %s", best, p.TargetLeadingZeros, name, hexutil.EncodeBig(salt), addr.Hex()))
			if best >= p.TargetLeadingZeros {
				if cutoff != nil {
					lowerCutoff(cutoff, attempt)
				}
				break
			}
		}

		if reportProgress && res.attempts%progressInterval == 0 {
			s.logProgress(res.attempts*stride, p.TargetLeadingZeros, start)
		}
		salt.Add(salt, step)
	}
	return res, nil
}

func lowerCutoff(cutoff *atomic.Uint64, attempt uint64) {
	for {
		cur := cutoff.Load()
		if attempt >= cur || cutoff.CompareAndSwap(cur, attempt) {
			return
		}
	}
}

func (s *SaltSearcher) checkExpected(name domain.ContractName, got, expected common.Address) error {
	if expected == (common.Address{}) || got == expected {
		return nil
	}
	s.log.Warn(strings.Repeat("!", 80))
	s.log.Warn(fmt.Sprintf("%s address mismatch", name), "expected", expected.Hex(), "computed", got.Hex())
	s.log.Warn(fmt.Sprintf("sed -i 's/%s/%s/g' %s", expected.Hex(), got.Hex(), strings.Join(domain.FixScriptTargets, " ")))
	s.log.Warn(strings.Repeat("!", 80))
	if name == domain.OwnerProxy {
		return fmt.Errorf("%w: expected %s, computed %s", domain.ErrBootstrapAddressMismatch, expected.Hex(), got.Hex())
	}
	return nil
}

func (s *SaltSearcher) logProgress(attempts uint64, target int, start time.Time) {
	elapsed := s.now().Sub(start).Seconds()
	if elapsed <= 0 {
		return
	}
	rate := float64(attempts) / elapsed
	eta := math.Pow(16, float64(target))/rate - elapsed
	s.log.Info(fmt.Sprintf("%s attempts", domain.FmtCommas(attempts)),
		"rate", fmt.Sprintf("%.0f/s", rate),
		"eta", fmt.Sprintf("%.0fs", max(eta, 0)),
	)
}

// SearchSaltParams holds the search-salt command options
type SearchSaltParams struct {
	Contract     string
	DeployType   domain.DeploymentType
	TargetZeros  int
	AttemptLimit uint64
	FirstSalt    string
	Workers      int
}

// SearchSaltResult is the outcome of the search-salt command
type SearchSaltResult struct {
	Contract domain.ContractName
	Input    *domain.Create2Input
	Search   *domain.Create2AddressSearch
}

// SearchSalt looks for a vanity salt for one configured contract
type SearchSalt struct {
	configs  DeploymentConfigStore
	selector ContractSelector
	searcher *SaltSearcher
	log      *slog.Logger
}

// NewSearchSalt creates a new SearchSalt use case
func NewSearchSalt(configs DeploymentConfigStore, selector ContractSelector, searcher *SaltSearcher, log *slog.Logger) *SearchSalt {
	return &SearchSalt{
		configs:  configs,
		selector: selector,
		searcher: searcher,
		log:      log,
	}
}

// Run loads the deployment config and searches salts for the chosen contract
func (uc *SearchSalt) Run(ctx context.Context, params SearchSaltParams) (*SearchSaltResult, error) {
	deployment, err := uc.configs.Load(ctx, params.DeployType)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s deployment config: %w", params.DeployType, err)
	}

	name, err := uc.pickContract(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	cfg, err := deployment.Contract(name)
	if err != nil {
		return nil, err
	}
	if len(cfg.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: no bytecode for %s", domain.ErrArtifactsMissing, name)
	}
	args, err := deployment.ConstructorArgs(name, deployment.ConfiguredAddresses(true))
	if err != nil {
		return nil, err
	}
	input, err := domain.NewCreate2Input(name, cfg.ABI, cfg.Bytecode, args)
	if err != nil {
		return nil, err
	}

	// the configured address only holds at the best known salt
	first, expected := cfg.BestKnownSalt, cfg.Create2Address
	if params.FirstSalt != "" {
		if first, err = domain.ParseSalt(params.FirstSalt); err != nil {
			return nil, err
		}
		expected = common.Address{}
	}

	factory := deployment.AddressOf(domain.ImmutableCreate2Factory, false)
	uc.log.Info("Searching salt", "contract", name, "factory", factory.Hex(), "initCodeHash", input.InitCodeHash.Hex(), "workers", max(params.Workers, 1))

	search, err := uc.searcher.SearchParallel(ctx, SaltSearchParams{
		Factory:            factory,
		Input:              input,
		TargetLeadingZeros: params.TargetZeros,
		FirstSalt:          first,
		AttemptLimit:       params.AttemptLimit,
		Expected:           expected,
	}, params.Workers)
	if search == nil {
		return nil, err
	}
	// a cancelled search still reports its best salt
	return &SearchSaltResult{Contract: name, Input: input, Search: search}, err
}

func (uc *SearchSalt) pickContract(ctx context.Context, raw string) (domain.ContractName, error) {
	if raw != "" {
		return domain.ParseContractName(raw)
	}
	if uc.selector == nil {
		return "", fmt.Errorf("no contract given")
	}
	candidates := lo.Filter(domain.AllContracts, func(n domain.ContractName, _ int) bool {
		return n != domain.ImmutableCreate2Factory
	})
	return uc.selector.SelectContract(ctx, candidates, "Select a contract to search a salt for")
}
