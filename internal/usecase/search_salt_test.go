package usecase

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFactory = common.HexToAddress("0x0000000000ffe8b47b3e2130213b802212439497")

func testInput(t *testing.T, name domain.ContractName) *domain.Create2Input {
	t.Helper()
	input, err := domain.NewCreate2Input(name, nil, []byte("init code of "+string(name)), nil)
	require.NoError(t, err)
	return input
}

func TestSaltSearcherSearch(t *testing.T) {
	input := testInput(t, domain.OpenAvatarGen0Token)
	searcher := NewSaltSearcher(testLogger())

	tests := []struct {
		name   string
		target int
		limit  uint64
	}{
		{name: "reaches a small target", target: 2, limit: 100_000},
		{name: "target zero stops at the first salt", target: 0, limit: 100},
		{name: "unreachable target exhausts the limit", target: 40, limit: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := searcher.Search(context.Background(), SaltSearchParams{
				Factory:            testFactory,
				Input:              input,
				TargetLeadingZeros: tt.target,
				AttemptLimit:       tt.limit,
			})
			require.NoError(t, err)
			require.NotNil(t, res.Found)

			found := res.Found
			want := domain.Derive(testFactory, found.SaltBytes32, input.InitCodeHash)
			assert.Equal(t, want, found.Address)
			assert.Equal(t, common.BigToHash(found.Salt), found.SaltBytes32)
			assert.LessOrEqual(t, res.Attempts, tt.limit)

			if tt.target < 40 {
				assert.GreaterOrEqual(t, found.LeadingZeros(), tt.target)
				assert.Equal(t, found.Salt.Uint64()+1, res.Attempts)
			} else {
				assert.Equal(t, tt.limit, res.Attempts)
			}
		})
	}
}

func TestSaltSearcherFindsBestInRange(t *testing.T) {
	input := testInput(t, domain.OpenAvatarGen0Assets)
	const limit = 2000

	bestZeros, bestSalt := -1, int64(-1)
	for i := int64(0); i < limit; i++ {
		salt := common.BigToHash(big.NewInt(i))
		if z := domain.LeadingZeros(domain.Derive(testFactory, salt, input.InitCodeHash)); z > bestZeros {
			bestZeros, bestSalt = z, i
		}
	}

	res, err := NewSaltSearcher(testLogger()).Search(context.Background(), SaltSearchParams{
		Factory:            testFactory,
		Input:              input,
		TargetLeadingZeros: 40,
		AttemptLimit:       limit,
	})
	require.NoError(t, err)
	assert.Equal(t, bestZeros, res.Found.LeadingZeros())
	assert.Equal(t, bestSalt, res.Found.Salt.Int64())
}

func TestSaltSearcherParallelMatchesSequential(t *testing.T) {
	input := testInput(t, domain.OpenAvatarGen0Renderer)
	searcher := NewSaltSearcher(testLogger())
	params := SaltSearchParams{
		Factory:            testFactory,
		Input:              input,
		TargetLeadingZeros: 40,
		FirstSalt:          big.NewInt(1000),
		AttemptLimit:       3001,
	}

	seq, err := searcher.Search(context.Background(), params)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		par, err := searcher.SearchParallel(context.Background(), params, workers)
		require.NoError(t, err)
		assert.Equal(t, seq.Found.Salt, par.Found.Salt, "workers=%d", workers)
		assert.Equal(t, seq.Found.Address, par.Found.Address, "workers=%d", workers)
		assert.Equal(t, params.AttemptLimit, par.Attempts, "workers=%d", workers)
	}
}

func TestSaltSearcherParallelReachedTarget(t *testing.T) {
	input := testInput(t, domain.OpenAvatarGen0Renderer)
	searcher := NewSaltSearcher(testLogger())

	tests := []struct {
		name    string
		target  int
		workers int
	}{
		{name: "two zeros on six workers", target: 2, workers: 6},
		{name: "two zeros on eight workers", target: 2, workers: 8},
		{name: "three zeros on six workers", target: 3, workers: 6},
		{name: "three zeros on eight workers", target: 3, workers: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := SaltSearchParams{
				Factory:            testFactory,
				Input:              input,
				TargetLeadingZeros: tt.target,
				AttemptLimit:       200_000,
			}

			seq, err := searcher.Search(context.Background(), params)
			require.NoError(t, err)
			require.GreaterOrEqual(t, seq.Found.LeadingZeros(), tt.target)

			par, err := searcher.SearchParallel(context.Background(), params, tt.workers)
			require.NoError(t, err)
			assert.Equal(t, seq.Found.Salt, par.Found.Salt)
			assert.Equal(t, seq.Found.Address, par.Found.Address)
			assert.LessOrEqual(t, par.Attempts, params.AttemptLimit)
		})
	}
}

func TestSaltSearcherExpectedAddress(t *testing.T) {
	searcher := NewSaltSearcher(testLogger())
	wrong := common.HexToAddress("0x00000000000000000000000000000000deadbeef")

	tests := []struct {
		name        string
		contract    domain.ContractName
		expected    func(in *domain.Create2Input) common.Address
		wantErr     error
		wantMatches bool
	}{
		{
			name:     "owner proxy mismatch aborts",
			contract: domain.OwnerProxy,
			expected: func(*domain.Create2Input) common.Address { return wrong },
			wantErr:  domain.ErrBootstrapAddressMismatch,
		},
		{
			name:     "other contract mismatch only warns",
			contract: domain.OpenAvatarGen0Token,
			expected: func(*domain.Create2Input) common.Address { return wrong },
		},
		{
			name:     "matching address",
			contract: domain.OwnerProxy,
			expected: func(in *domain.Create2Input) common.Address {
				return domain.Derive(testFactory, common.Hash{}, in.InitCodeHash)
			},
			wantMatches: true,
		},
		{
			name:     "zero expected skips the check",
			contract: domain.OwnerProxy,
			expected: func(*domain.Create2Input) common.Address { return common.Address{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testInput(t, tt.contract)
			res, err := searcher.Search(context.Background(), SaltSearchParams{
				Factory:      testFactory,
				Input:        input,
				AttemptLimit: 1,
				Expected:     tt.expected(input),
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatches, res.Matches)
			assert.Equal(t, uint64(1), res.Attempts)
		})
	}
}

func TestSaltSearcherValidation(t *testing.T) {
	searcher := NewSaltSearcher(testLogger())
	input := testInput(t, domain.OwnerProxy)
	maxSalt := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	tests := []struct {
		name   string
		params SaltSearchParams
	}{
		{name: "missing input", params: SaltSearchParams{AttemptLimit: 1}},
		{name: "zero limit", params: SaltSearchParams{Input: input}},
		{name: "range overflows the salt", params: SaltSearchParams{Input: input, FirstSalt: maxSalt, AttemptLimit: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := searcher.Search(context.Background(), tt.params)
			assert.Error(t, err)
		})
	}
}

func TestSaltSearcherCancelled(t *testing.T) {
	input := testInput(t, domain.OwnerProxy)
	const limit = 1 << 40

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			res, err := NewSaltSearcher(testLogger()).SearchParallel(ctx, SaltSearchParams{
				Factory:            testFactory,
				Input:              input,
				TargetLeadingZeros: 40,
				AttemptLimit:       limit,
			}, workers)
			require.ErrorIs(t, err, context.Canceled)
			require.NotNil(t, res)
			require.NotNil(t, res.Found)
			assert.Positive(t, res.Attempts)
			assert.Less(t, res.Attempts, uint64(limit))

			want := domain.Derive(testFactory, res.Found.SaltBytes32, input.InitCodeHash)
			assert.Equal(t, want, res.Found.Address)
		})
	}
}

func TestSaltSearcherDeadlineKeepsBest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := NewSaltSearcher(testLogger()).Search(ctx, SaltSearchParams{
		Factory:            testFactory,
		Input:              testInput(t, domain.OpenAvatarGen0Token),
		TargetLeadingZeros: 40,
		AttemptLimit:       1 << 40,
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, res.Found)
	assert.Greater(t, res.Attempts, uint64(cancelInterval))
}

type fakeSelector struct {
	pick   domain.ContractName
	offers []domain.ContractName
}

func (s *fakeSelector) SelectContract(_ context.Context, names []domain.ContractName, _ string) (domain.ContractName, error) {
	s.offers = names
	return s.pick, nil
}

func TestSearchSaltRun(t *testing.T) {
	deployment := testDeployment(t, domain.HardhatDefaultDeployer, domain.HardhatDefaultDeployer)
	selector := &fakeSelector{pick: domain.OpenAvatarGen0TextRecords}
	uc := NewSearchSalt(&fakeConfigStore{deployment: deployment}, selector, NewSaltSearcher(testLogger()), testLogger())

	t.Run("configured salt reproduces the configured address", func(t *testing.T) {
		res, err := uc.Run(context.Background(), SearchSaltParams{
			Contract:     string(domain.OpenAvatarGen0Token),
			DeployType:   domain.DeploymentTypeTest,
			AttemptLimit: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OpenAvatarGen0Token, res.Contract)
		assert.True(t, res.Search.Matches)
		assert.Equal(t, deployment.AddressOf(domain.OpenAvatarGen0Token, true), res.Search.Found.Address)
	})

	t.Run("selector offers everything but the factory", func(t *testing.T) {
		res, err := uc.Run(context.Background(), SearchSaltParams{
			DeployType:   domain.DeploymentTypeTest,
			TargetZeros:  1,
			AttemptLimit: 1000,
			Workers:      4,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OpenAvatarGen0TextRecords, res.Contract)
		assert.NotContains(t, selector.offers, domain.ImmutableCreate2Factory)
		assert.Len(t, selector.offers, len(domain.AllContracts)-1)
	})

	t.Run("explicit first salt skips the configured address check", func(t *testing.T) {
		res, err := uc.Run(context.Background(), SearchSaltParams{
			Contract:     string(domain.OwnerProxy),
			DeployType:   domain.DeploymentTypeTest,
			FirstSalt:    "0x10",
			AttemptLimit: 1,
		})
		require.NoError(t, err)
		assert.False(t, res.Search.Matches)
		assert.Equal(t, int64(16), res.Search.Found.Salt.Int64())
	})

	t.Run("cancelled search reports the best salt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := uc.Run(ctx, SearchSaltParams{
			Contract:     string(domain.OpenAvatarGen0Token),
			DeployType:   domain.DeploymentTypeTest,
			TargetZeros:  40,
			AttemptLimit: 1_000_000,
		})
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, res)
		assert.Equal(t, domain.OpenAvatarGen0Token, res.Contract)
		assert.NotNil(t, res.Search.Found)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := uc.Run(context.Background(), SearchSaltParams{
			Contract:     "NotAContract",
			DeployType:   domain.DeploymentTypeTest,
			AttemptLimit: 1,
		})
		assert.ErrorIs(t, err, domain.ErrUnknownContract)
	})
}
