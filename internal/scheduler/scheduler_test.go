package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	calls []time.Time
	n     int
	err   error
}

func (s *stub) SendDigests(_ context.Context, now time.Time) (int, error) {
	s.calls = append(s.calls, now)
	return s.n, s.err
}

func (s *stub) ExpireJobs(_ context.Context, now time.Time) (int, error) {
	s.calls = append(s.calls, now)
	return s.n, s.err
}

func (s *stub) SendPurchaseExpiryNotices(_ context.Context, now time.Time) (int, error) {
	s.calls = append(s.calls, now)
	return s.n, s.err
}

func TestNewRegistersJobs(t *testing.T) {
	s, err := New(context.Background(), Deps{Digests: &stub{}, Jobs: &stub{}, Purchases: &stub{}}, 6, nil)
	require.NoError(t, err)
	defer s.Shutdown()

	assert.ElementsMatch(t, []string{JobSendDigests, JobExpireJobs, JobPurchaseExpiryEmail}, s.Names())
}

func TestRunnersPassCurrentTime(t *testing.T) {
	digests, jobs, purchases := &stub{n: 2}, &stub{err: errors.New("db down")}, &stub{}
	s, err := New(context.Background(), Deps{Digests: digests, Jobs: jobs, Purchases: purchases}, 23, time.UTC)
	require.NoError(t, err)
	defer s.Shutdown()

	fixed := time.Date(2024, 4, 1, 6, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.runDigests()
	s.runExpireJobs()
	s.runPurchaseNotices()

	assert.Equal(t, []time.Time{fixed}, digests.calls)
	assert.Equal(t, []time.Time{fixed}, jobs.calls)
	assert.Equal(t, []time.Time{fixed}, purchases.calls)
}
