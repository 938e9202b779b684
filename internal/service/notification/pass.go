package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/pkg/ctxutil"
)

// RunPass fans one notification kind out to every user whose preference
// matches it. Users are processed with bounded concurrency and in no
// particular order; a failure for one user never stops the others. The
// report lists every processed user.
func (s *Service) RunPass(ctx context.Context, kind domain.NotificationKind) PassReport {
	now := s.now()
	today := domain.Today(now, s.cfg.Location)

	report := PassReport{
		PassID:    uuid.NewString(),
		Kind:      kind,
		StartedAt: now,
	}
	ctx = ctxutil.WithPassID(ctx, report.PassID)
	log := s.log.With(slog.String("pass_id", report.PassID), slog.String("kind", kind.String()))

	if !kind.IsValid() {
		report.Err = fmt.Errorf("notification.RunPass: unknown kind %d", int(kind))
		log.ErrorContext(ctx, "notification pass rejected", slog.String("error", report.Err.Error()))
		return report
	}

	prefs, err := s.prefs.ListMatching(ctx, kind.Filter())
	if err != nil {
		report.Err = fmt.Errorf("notification.RunPass list recipients: %w", err)
		log.ErrorContext(ctx, "notification pass aborted", slog.String("error", report.Err.Error()))
		return report
	}

	report.Outcomes = make([]UserOutcome, len(prefs))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for i := range prefs {
		g.Go(func() error {
			out := s.processUserSafe(ctx, kind, prefs[i], now, today, s.cfg.DigestThresholdDays)
			report.Outcomes[i] = out
			s.logOutcome(ctx, log, out)
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = s.now().Sub(now)
	sent, skipped, failed := report.Counts()
	log.InfoContext(ctx, "notification pass finished",
		slog.Int("recipients", len(prefs)),
		slog.Int("sent", sent),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
		slog.Duration("duration", report.Duration),
	)

	return report
}

func (s *Service) logOutcome(ctx context.Context, log *slog.Logger, out UserOutcome) {
	attrs := []any{
		slog.String("user_id", out.UserID.String()),
		slog.Int("item_count", out.ItemCount),
		slog.Bool("sent", out.Sent),
		slog.Bool("skipped", out.Skipped),
		slog.Bool("used_fallback", out.UsedFallback),
		slog.Bool("watermark_updated", out.WatermarkUpdated),
	}
	if out.Err != nil {
		log.ErrorContext(ctx, "user notification failed", append(attrs, slog.String("error", out.Err.Error()))...)
		return
	}
	log.DebugContext(ctx, "user notification processed", attrs...)
}

// processUserSafe runs processUser and turns a panic into a failed outcome so
// one malformed record cannot take the pass down.
func (s *Service) processUserSafe(
	ctx context.Context,
	kind domain.NotificationKind,
	pref domain.NotificationPreference,
	now, today time.Time,
	threshold int,
) (out UserOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = UserOutcome{UserID: pref.UserID, Err: fmt.Errorf("panic while processing user: %v", r)}
		}
	}()
	return s.processUser(ctx, kind, pref, now, today, threshold)
}

// processUser is the per-user cycle shared by scheduled passes and on-demand
// triggers: load items, classify them against today, send the message for
// kind, then advance the watermark whether or not the send succeeded.
// An item store failure ends the cycle before anything is sent and leaves the
// watermark alone.
func (s *Service) processUser(
	ctx context.Context,
	kind domain.NotificationKind,
	pref domain.NotificationPreference,
	now, today time.Time,
	threshold int,
) UserOutcome {
	out := UserOutcome{UserID: pref.UserID}

	if !pref.Deliverable() {
		out.Err = fmt.Errorf("user %s: %w", pref.UserID, domain.ErrPreferenceNotConfigured)
		return out
	}
	to := pref.Address()

	var (
		items []domain.PerishableItem
		err   error
	)
	if kind.IsDigest() {
		items, err = s.inventory.ExpiringItems(ctx, pref.UserID, threshold, today)
	} else {
		items, err = s.inventory.AllItems(ctx, pref.UserID)
	}
	if err != nil {
		out.Err = fmt.Errorf("load items: %w", err)
		return out
	}

	classified := domain.ClassifyItems(today, items)

	if kind.IsDigest() {
		expired, upcoming := domain.SplitRelevant(classified, threshold)
		out.ItemCount = len(expired) + len(upcoming)
		if out.ItemCount == 0 {
			out.Skipped = true
		} else {
			res, err := s.gateway.SendExpirationDigest(ctx, to, expired, upcoming)
			out.apply(res.Sent, res.UsedFallback, res.Err, err)
		}
	} else {
		out.ItemCount = len(classified)
		res, err := s.gateway.SendWeeklySummary(ctx, to, classified)
		out.apply(res.Sent, res.UsedFallback, res.Err, err)
	}

	if err := s.prefs.UpdateLastNotified(ctx, pref.ID, now); err != nil {
		if out.Err == nil {
			out.Err = fmt.Errorf("update watermark: %w", err)
		}
		return out
	}
	out.WatermarkUpdated = true

	return out
}

func (o *UserOutcome) apply(sent, usedFallback bool, sendErr, callErr error) {
	o.Sent = sent
	o.UsedFallback = usedFallback
	switch {
	case callErr != nil:
		o.Err = fmt.Errorf("send: %w", callErr)
	case !sent:
		o.Err = fmt.Errorf("send: %w", sendErrOrTransport(sendErr))
	}
}

func sendErrOrTransport(err error) error {
	if err == nil {
		return domain.ErrTransport
	}
	return err
}
