package server

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	"github.com/loopcard/loyalty-backend/internal/server/repository"
	"github.com/loopcard/loyalty-backend/pkg/logging"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// BacklogSweeper periodically refreshes the pending-request gauges so the
// admin backlog is visible in dashboards without polling the API.
type BacklogSweeper struct {
	cron     *cron.Cron
	requests repository.RequestRepository
	logger   logging.Logger
}

func NewBacklogSweeper(requests repository.RequestRepository, logger logging.Logger) *BacklogSweeper {
	return &BacklogSweeper{
		cron:     cron.New(),
		requests: requests,
		logger:   logger,
	}
}

func (s *BacklogSweeper) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *BacklogSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *BacklogSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, requestType := range []string{types.RequestTypeMint, types.RequestTypePayment} {
		count, err := s.requests.CountPendingByType(ctx, requestType)
		if err != nil {
			s.logger.Warnf("Backlog sweep failed for %s requests: %v", requestType, err)
			continue
		}
		metrics.PendingRequests.WithLabelValues(requestType).Set(float64(count))
	}
}
