package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/report/dto"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeReader serves queued messages, then blocks until ctx is done.
type fakeReader struct {
	mu       sync.Mutex
	messages [][]byte
	errs     []error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		r.mu.Unlock()
		return kafka.Message{}, err
	}
	if len(r.messages) > 0 {
		v := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return kafka.Message{Value: v}, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

type fakeUseCase struct {
	mu          sync.Mutex
	invalidated int
	err         error
}

func (f *fakeUseCase) GetKPISummary(ctx context.Context, filters *dto.ReportFilters) (*model.KPISummary, error) {
	return nil, nil
}

func (f *fakeUseCase) GetTopProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	return nil, nil
}

func (f *fakeUseCase) GetLeastSoldProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	return nil, nil
}

func (f *fakeUseCase) GetMostReturnedProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	return nil, nil
}

func (f *fakeUseCase) GetCategoryComparison(ctx context.Context, filters *dto.ReportFilters) ([]model.CategorySales, error) {
	return nil, nil
}

func (f *fakeUseCase) InvalidateCache(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	return f.err
}

func (f *fakeUseCase) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidated
}

func TestProcessMessage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"order created", `{"event_id":"1","event_type":"OrderCreated"}`, 1},
		{"return requested", `{"event_id":"2","event_type":"ReturnRequested"}`, 1},
		{"stock adjusted", `{"event_id":"3","event_type":"InventoryAdjusted"}`, 1},
		{"unrelated event", `{"event_id":"4","event_type":"UserSignedUp"}`, 0},
		{"garbage", `not json`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			l := NewReportListener(&fakeReader{}, uc, logger.NewNop())
			l.processMessage(context.Background(), []byte(tt.value))
			if got := uc.count(); got != tt.want {
				t.Errorf("expected %d invalidations, got %d", tt.want, got)
			}
		})
	}
}

func TestProcessMessage_InvalidateFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := &fakeUseCase{err: errors.New("redis down")}
	l := NewReportListener(&fakeReader{}, uc, logger.Wrap(zap.New(core)))

	l.processMessage(context.Background(), []byte(`{"event_id":"9","event_type":"OrderUpdated"}`))

	if logs.FilterMessage("Failed to invalidate report cache").Len() != 1 {
		t.Error("expected invalidation failure to be logged")
	}
}

func TestStart_ConsumesUntilCancelled(t *testing.T) {
	reader := &fakeReader{
		errs: []error{errors.New("broker not available")},
		messages: [][]byte{
			[]byte(`{"event_id":"1","event_type":"OrderCreated"}`),
			[]byte(`{"event_id":"2","event_type":"OrderDelivered"}`),
		},
	}
	uc := &fakeUseCase{}
	l := NewReportListener(reader, uc, logger.NewNop())
	l.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for uc.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 invalidations, got %d", uc.count())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}
