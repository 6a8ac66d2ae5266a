package generator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"menu-engine/internal/logger"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/subscription"
	"menu-engine/internal/week"
)

type subscriptionSource interface {
	ListActive(ctx context.Context) ([]subscription.Subscription, error)
}

type deliveryDispatcher interface {
	DeliverAll(ctx context.Context, deliveries []notification.Delivery) ([]notification.Result, int)
}

type runRecorder interface {
	Record(ctx context.Context, r metrics.GenerationRun) (string, error)
}

// Request describes one batch invocation.
type Request struct {
	Override week.Override
	Force    bool
}

// Report is the full outcome of a batch.
type Report struct {
	RunID               string
	Window              week.Window
	Force               bool
	Result              *BatchResult
	NotificationResults []notification.Result
	NotificationsSent   int
}

// Runner drives the weekly batch: resolve the week, expand subscriptions,
// generate each target in turn, then deliver notifications.
type Runner struct {
	subs         subscriptionSource
	orchestrator *Orchestrator
	dispatcher   deliveryDispatcher
	runs         runRecorder
	log          *logger.Logger
	tracer       trace.Tracer
	now          func() time.Time
}

// NewRunner creates a new Runner.
func NewRunner(subs subscriptionSource, orchestrator *Orchestrator, dispatcher deliveryDispatcher, runs runRecorder, log *logger.Logger) *Runner {
	return &Runner{
		subs:         subs,
		orchestrator: orchestrator,
		dispatcher:   dispatcher,
		runs:         runs,
		log:          log.With("component", "BatchRunner"),
		tracer:       otel.Tracer("menu-engine/generator"),
		now:          time.Now,
	}
}

// Run executes one batch. Only failing to load subscriptions is an error;
// per-target and per-recipient failures are part of the report.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	started := time.Now()
	window := week.Resolve(r.now(), req.Override)
	log := r.log.With("week_start", window.WeekStart(), "week_end", window.WeekEnd(), "force", req.Force)

	ctx, span := r.tracer.Start(ctx, "weekly_menu.batch", trace.WithAttributes(
		attribute.String("week_start", window.WeekStart()),
		attribute.String("week_end", window.WeekEnd()),
		attribute.Bool("force_regenerate", req.Force),
	))
	defer span.End()

	subs, err := r.subs.ListActive(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load subscriptions")
		return nil, fmt.Errorf("failed to load active subscriptions: %w", err)
	}
	targets := subscription.Expand(subs)
	span.SetAttributes(attribute.Int("targets", len(targets)))
	log.Info("Starting weekly menu batch", "subscriptions", len(subs), "targets", len(targets))

	result := &BatchResult{}
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			for _, rest := range targets[i:] {
				result.Add(Failed{UserID: rest.UserID, SubscriptionID: rest.SubscriptionID, Err: err})
			}
			break
		}
		result.Add(r.generateTraced(ctx, target, window, req.Force))
	}

	notificationResults, sent := r.dispatcher.DeliverAll(ctx, result.Deliveries())

	report := &Report{
		Window:              window,
		Force:               req.Force,
		Result:              result,
		NotificationResults: notificationResults,
		NotificationsSent:   sent,
	}

	generated, skipped, failed := result.Counts()
	span.SetAttributes(
		attribute.Int("generated", generated),
		attribute.Int("skipped", skipped),
		attribute.Int("failed", failed),
		attribute.Int("notifications_sent", sent),
	)
	latency := time.Since(started)
	runID, err := r.runs.Record(context.WithoutCancel(ctx), metrics.GenerationRun{
		WeekStart:           window.WeekStart(),
		WeekEnd:             window.WeekEnd(),
		ForceRegenerate:     req.Force,
		Generated:           generated,
		Skipped:             skipped,
		Failed:              failed,
		NotificationsSent:   sent,
		NotificationsFailed: len(notificationResults) - sent,
		LatencyMS:           latency.Milliseconds(),
		StartedAt:           started,
	})
	if err != nil {
		log.Warn("Failed to record batch metrics", "error", err)
	}
	report.RunID = runID

	log.Info("Weekly menu batch finished",
		"run_id", runID,
		"generated", generated,
		"skipped", skipped,
		"failed", failed,
		"notifications_sent", sent,
		"latency_ms", latency.Milliseconds(),
	)
	return report, nil
}

func (r *Runner) generateTraced(ctx context.Context, target subscription.GenerationTarget, window week.Window, force bool) Outcome {
	ctx, span := r.tracer.Start(ctx, "weekly_menu.target", trace.WithAttributes(
		attribute.Int64("user_id", target.UserID),
		attribute.Int64("subscription_id", target.SubscriptionID),
	))
	defer span.End()

	outcome := r.orchestrator.Generate(ctx, target, window, force)
	switch o := outcome.(type) {
	case Generated:
		span.SetAttributes(attribute.String("outcome", "generated"), attribute.Int64("weekly_menu_id", o.WeeklyMenuID))
	case Skipped:
		span.SetAttributes(attribute.String("outcome", "skipped"), attribute.String("reason", o.Reason))
	case Failed:
		span.SetAttributes(attribute.String("outcome", "failed"))
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	}
	return outcome
}
