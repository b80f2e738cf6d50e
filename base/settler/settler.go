package settler

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/bidhaus/goapi/base/backoff"
	"github.com/bidhaus/goapi/base/counter"
	bCtx "github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/goroutine"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/base/metrics"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
)

var metOnce sync.Once
var met metrics.Service

const DefaultInterval = 10 * time.Second
const DefaultBatchSize = int32(100)
const DefaultWorkers = 8
const backoffLimit = 5 * time.Minute

// SettlerCfg configures the due-auction sweeper. Caller is recorded as the
// settlement trigger on every auction the sweeper closes.
type SettlerCfg struct {
	ItemRepo  auction.ItemRepo
	AuctionUC auction.Usecase
	Clock     clock.Clock
	Caller    domain.Address
	Interval  time.Duration
	BatchSize int32
	Workers   int
	ErrorCh   chan<- error
}

// Settler periodically scans for unsold auctions whose deadline has passed
// and settles them. Settlement is idempotent on the usecase side, so running
// multiple settlers, or racing a settlement triggered over http, is safe.
type Settler struct {
	itemRepo  auction.ItemRepo
	auctionUC auction.Usecase
	clock     clock.Clock
	caller    domain.Address
	interval  time.Duration
	batchSize int32
	pool      *goroutines.Pool
	errorCh   chan<- error
	stoppedCh chan interface{}
}

func NewSettler(cfg *SettlerCfg) *Settler {
	metOnce.Do(func() {
		met = metrics.New("settler")
	})
	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}
	return &Settler{
		itemRepo:  cfg.ItemRepo,
		auctionUC: cfg.AuctionUC,
		clock:     cfg.Clock,
		caller:    cfg.Caller,
		interval:  interval,
		batchSize: batchSize,
		pool:      goroutines.NewPool(workers, goroutines.WithTaskQueueLength(int(batchSize))),
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
}

func (s *Settler) Start(ctx bCtx.Ctx) {
	goroutine.RecoverableGo(func() {
		if err := s.loop(ctx); err != nil {
			s.errorCh <- err
		}
	}, goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
		s.errorCh <- xerrors.Errorf("settler panic: %v", p)
	}), goroutine.WithAfterEnded(func() {
		close(s.stoppedCh)
	}))
}

func (s *Settler) Wait() {
	<-s.stoppedCh
}

func (s *Settler) loop(ctx bCtx.Ctx) error {
	bo := backoff.NewExponential(s.interval, backoffLimit)
	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()
	defer s.pool.Release()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				ctx.WithField("err", err).Error("settler.Sweep failed")
				met.BumpSum("sweep.err", 1)
				if err := bo.Backoff(ctx); err != nil {
					return nil
				}
				continue
			}
			bo.Reset()
		}
	}
}

// Sweep settles every due auction found in one batch. A batch larger than
// BatchSize is picked up on the next tick.
func (s *Settler) Sweep(ctx bCtx.Ctx) error {
	defer met.BumpTime("sweep.time").End()
	items, err := s.itemRepo.FindAll(ctx,
		auction.WithSold(false),
		auction.WithDeadlineBefore(s.clock.Now()),
		auction.WithSort("deadline"),
		auction.WithPagination(0, s.batchSize),
	)
	if err != nil {
		return xerrors.Errorf("failed to find due auctions: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	settled := counter.NewCounter()
	failed := counter.NewCounter()
	wg := sync.WaitGroup{}
	for _, item := range items {
		item := item
		wg.Add(1)
		if err := s.pool.Schedule(func() {
			defer wg.Done()
			if _, err := s.auctionUC.CloseAuction(ctx, item.ItemId, s.caller); err != nil {
				// someone else settled it between scan and close
				if errors.Is(err, domain.ErrAlreadySettled) {
					return
				}
				ctx.WithFields(log.Fields{
					"err":    err,
					"itemId": item.ItemId,
				}).Error("auctionUC.CloseAuction failed")
				failed.Add(1)
				return
			}
			settled.Add(1)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return xerrors.Errorf("failed to schedule settlement: %w", err)
		}
	}
	wg.Wait()

	met.BumpSum("sweep.settled", float64(settled.Count()))
	ctx.WithFields(log.Fields{
		"due":     len(items),
		"settled": settled.Count(),
		"failed":  failed.Count(),
	}).Info("sweep done")
	if failed.Count() > 0 {
		return xerrors.Errorf("failed to settle %d of %d due auctions", failed.Count(), len(items))
	}
	return nil
}
