package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRefresher struct {
	refreshCalls int32
	needsRefresh bool
	needsErr     error
	refreshErr   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) (*domain.ImportRunDTO, error) {
	atomic.AddInt32(&f.refreshCalls, 1)
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &domain.ImportRunDTO{Status: string(domain.ImportStatusSucceeded), RowCount: 42}, nil
}

func (f *fakeRefresher) NeedsRefresh(ctx context.Context) (bool, error) {
	return f.needsRefresh, f.needsErr
}

func (f *fakeRefresher) calls() int32 {
	return atomic.LoadInt32(&f.refreshCalls)
}

func TestRefreshJob_Run(t *testing.T) {
	fake := &fakeRefresher{}
	job := NewRefreshJob(fake, zap.NewNop(), time.Minute)

	job.Run()
	assert.Equal(t, int32(1), fake.calls())
}

func TestRefreshJob_Run_FailureDoesNotPanic(t *testing.T) {
	fake := &fakeRefresher{refreshErr: errors.New("upstream down")}
	job := NewRefreshJob(fake, zap.NewNop(), time.Minute)

	job.Run()
	assert.Equal(t, int32(1), fake.calls())
}

func TestRefreshJob_StartupRefresh_RunsWhenStale(t *testing.T) {
	fake := &fakeRefresher{needsRefresh: true}
	job := NewRefreshJob(fake, zap.NewNop(), time.Minute)

	job.RunStartupRefresh()
	assert.Equal(t, int32(1), fake.calls())
}

func TestRefreshJob_StartupRefresh_SkipsWhenFresh(t *testing.T) {
	fake := &fakeRefresher{needsRefresh: false}
	job := NewRefreshJob(fake, zap.NewNop(), time.Minute)

	job.RunStartupRefresh()
	assert.Equal(t, int32(0), fake.calls())
}

func TestRefreshJob_StartupRefresh_FreshnessCheckError(t *testing.T) {
	fake := &fakeRefresher{needsErr: errors.New("db unavailable")}
	job := NewRefreshJob(fake, zap.NewNop(), time.Minute)

	job.RunStartupRefresh()
	assert.Equal(t, int32(0), fake.calls())
}

func TestRegisterRefreshJob(t *testing.T) {
	fake := &fakeRefresher{}
	scheduler := NewScheduler(zap.NewNop())

	err := RegisterRefreshJob(scheduler, fake, zap.NewNop(), "0 0 3 * * *", time.Minute, false)
	require.NoError(t, err)
	assert.Contains(t, scheduler.GetJobNames(), RefreshJobName)
}

func TestRegisterRefreshJob_InvalidCron(t *testing.T) {
	fake := &fakeRefresher{}
	scheduler := NewScheduler(zap.NewNop())

	err := RegisterRefreshJob(scheduler, fake, zap.NewNop(), "not a cron", time.Minute, false)
	assert.Error(t, err)
}
