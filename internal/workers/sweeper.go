package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/store"
)

// codeSweeper periodically nulls expired one-time passcodes. Verification is
// already guarded by an expiry check in the store, so the sweeper is pure
// hygiene: it keeps dead codes from accumulating in the users table.
type codeSweeper struct {
	userRepository store.UserRepository
	interval       time.Duration
	logger         *logger.Logger
}

func newCodeSweeper(userRepository store.UserRepository, interval time.Duration, logger *logger.Logger) *codeSweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &codeSweeper{
		userRepository: userRepository,
		interval:       interval,
		logger:         logger,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *codeSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("passcode sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("passcode sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *codeSweeper) sweep(ctx context.Context) {
	affected, err := s.userRepository.ClearExpiredCodes(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Msg("passcode sweep failed")
		return
	}
	if affected > 0 {
		s.logger.Info().Int64("cleared", affected).Msg("expired passcodes cleared")
	}
}
