package verification

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupStale deletes consumed records and records past their expiry.
func (s *Service) CleanupStale(ctx context.Context) (int, error) {
	n, err := s.codes.DeleteStale(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("verification.CleanupStale: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "stale verification codes removed", slog.Int("count", n))
	}

	return n, nil
}
