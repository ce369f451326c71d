package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	repo "trial-monitor/internal/monitor/repository"
)

func newTestRepo(capacity int) *implRepository {
	r := New(capacity, nil).(*implRepository)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return r
}

func TestCreateRecord(t *testing.T) {
	r := newTestRepo(10)
	ctx := context.Background()

	rec, err := r.CreateRecord(ctx, repo.CreateRecordOptions{
		Sender:      "telegram_1",
		RequestType: model.RequestFileRanking,
		Status:      monitor.RequestStatusProcessed,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err, "record ID should be a UUID")
	assert.Equal(t, "telegram_1", rec.Sender)
	assert.Equal(t, model.RequestFileRanking, rec.RequestType)
	assert.Equal(t, monitor.RequestStatusProcessed, rec.Status)
	assert.Equal(t, r.now(), rec.Timestamp)
}

func TestCreateRecord_Invalid(t *testing.T) {
	r := newTestRepo(10)

	_, err := r.CreateRecord(context.Background(), repo.CreateRecordOptions{Sender: "x"})
	assert.ErrorIs(t, err, repo.ErrInvalidRecord)

	total, _ := r.CountRecords(context.Background())
	assert.Zero(t, total)
}

func TestRequestLog_BoundedWithRunningTotal(t *testing.T) {
	r := newTestRepo(10)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := r.CreateRecord(ctx, repo.CreateRecordOptions{
			Sender:      fmt.Sprintf("s%d", i),
			RequestType: model.RequestDataQuality,
			Status:      monitor.RequestStatusProcessed,
		})
		require.NoError(t, err)
	}

	recs, err := r.ListRecords(ctx, repo.ListRecordsOptions{})
	require.NoError(t, err)
	require.Len(t, recs, 10)
	assert.Equal(t, "s24", recs[0].Sender, "newest first")
	assert.Equal(t, "s15", recs[9].Sender, "oldest kept")

	total, err := r.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
}

func TestListRecords_Filters(t *testing.T) {
	r := newTestRepo(10)
	ctx := context.Background()

	for _, s := range []string{"a", "b", "a", "a"} {
		_, err := r.CreateRecord(ctx, repo.CreateRecordOptions{
			Sender:      s,
			RequestType: model.RequestDataIntegrity,
			Status:      monitor.RequestStatusFailed,
		})
		require.NoError(t, err)
	}

	recs, _ := r.ListRecords(ctx, repo.ListRecordsOptions{Sender: "a"})
	assert.Len(t, recs, 3)

	recs, _ = r.ListRecords(ctx, repo.ListRecordsOptions{Limit: 2})
	assert.Len(t, recs, 2)
}

func TestRequestLog_Concurrent(t *testing.T) {
	r := newTestRepo(10)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.CreateRecord(ctx, repo.CreateRecordOptions{
				Sender:      "c",
				RequestType: model.RequestMonitoringPlan,
				Status:      monitor.RequestStatusProcessed,
			})
		}()
	}
	wg.Wait()

	total, _ := r.CountRecords(ctx)
	assert.Equal(t, int64(50), total)
	recs, _ := r.ListRecords(ctx, repo.ListRecordsOptions{})
	assert.Len(t, recs, 10)
}
