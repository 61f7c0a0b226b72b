package observable

import (
	"context"
	"log/slog"

	"github.com/turbot/owid-covid-dashboard/context_values"
	"github.com/turbot/owid-covid-dashboard/events"
)

// LoggingObserver writes every event to a structured logger
type LoggingObserver struct {
	logger *slog.Logger
}

func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// Notify logs the event, tagged with the execution id of the run in ctx
func (o *LoggingObserver) Notify(ctx context.Context, e events.Event) error {
	logger := o.logger
	if executionId, err := context_values.ExecutionIdFromContext(ctx); err == nil {
		logger = logger.With("execution_id", executionId)
	}

	switch t := e.(type) {
	case *events.Started:
		logger.InfoContext(ctx, "run started", "url", t.Url)
	case *events.ArtifactDownloaded:
		logger.InfoContext(ctx, "artifact downloaded", "url", t.Info.Name, "local_path", t.Info.LocalName, "size", t.Info.Size)
	case *events.TableLoaded:
		logger.InfoContext(ctx, "table loaded", "path", t.Path, "rows", t.RowCount, "columns", t.ColumnCount)
	case *events.SchemaValidated:
		logger.InfoContext(ctx, "schema validated", "locations", t.LocationCount)
	case *events.LocationFiltered:
		if t.Empty() {
			logger.WarnContext(ctx, "no data for location", "location", t.Location)
			return nil
		}
		logger.InfoContext(ctx, "location filtered", "location", t.Location, "rows", t.RowCount)
	case *events.Error:
		logger.ErrorContext(ctx, "run halted", "phase", t.Phase, "error", t.Err)
	case *events.Completed:
		logger.InfoContext(ctx, "run completed", "phase", t.Phase, "timing", t.Timing.String())
	default:
		logger.DebugContext(ctx, "unhandled event", "event", e)
	}
	return nil
}
