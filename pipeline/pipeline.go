package pipeline

import (
	"context"
	"log/slog"

	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/owid-covid-dashboard/artifact_loader"
	"github.com/turbot/owid-covid-dashboard/artifact_source"
	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/context_values"
	"github.com/turbot/owid-covid-dashboard/events"
	"github.com/turbot/owid-covid-dashboard/observable"
	"github.com/turbot/owid-covid-dashboard/rate_limiter"
	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/types"
)

// Fetcher retrieves the dataset and writes it to localPath
type Fetcher interface {
	Fetch(ctx context.Context, url, localPath string) (*types.DownloadedArtifactInfo, error)
}

// LoaderFactory returns the loader for a downloaded artifact
type LoaderFactory func(*types.DownloadedArtifactInfo, *schema.RowSchema) artifact_loader.Loader

type Pipeline struct {
	observable.Base

	Url          string
	ArtifactPath string

	fetcher   Fetcher
	loaderFor LoaderFactory
	schema    *schema.RowSchema
	required  []string
	status    *events.Status
	// throttles runs, nil if unthrottled
	limiter *rate_limiter.APILimiter
}

func New(url, artifactPath string, opts ...Option) *Pipeline {
	p := &Pipeline{
		Url:          url,
		ArtifactPath: artifactPath,
		fetcher:      artifact_source.NewFetcher(),
		loaderFor:    artifact_loader.LoaderForArtifact,
		schema:       schema.CovidSchema(),
		required:     schema.RequiredColumns(),
		status:       events.NewStatusEvent(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one full pass of the pipeline. If selected is nil the run stops once the dataset is validated,
// with Locations populated.
func (p *Pipeline) Run(ctx context.Context, selected *string) *State {
	d := p.Prepare(ctx)
	if selected == nil || d.Err != nil {
		return d.State()
	}
	return d.Select(ctx, *selected)
}

// Prepare fetches, loads and validates the dataset, then projects it to the required columns.
// A failure in any step halts the returned dataset. The error is held in Dataset.Err.
// If the limiter refuses the run nothing is started: the dataset stays in PhaseStart
// with an Err wrapping rate_limiter.ErrLimited, and no events are raised.
func (p *Pipeline) Prepare(ctx context.Context) (d *Dataset) {
	if p.limiter != nil {
		if err := p.limiter.TryAcquire(); err != nil {
			slog.Debug("pipeline run throttled", "limiter", p.limiter.String(), "error", err)
			d = newDataset(p, "")
			d.Err = err
			return d
		}
		defer p.limiter.Release()
	}

	ctx, executionId := context_values.WithNewExecutionId(ctx)
	d = newDataset(p, executionId)

	defer func() {
		if r := recover(); r != nil {
			d.halt(ctx, helpers.ToError(r))
		}
		if d.Err == nil {
			d.phase = currentPhase(ctx, d.machine)
		}
		p.notify(ctx, events.NewCompletedEvent(executionId, string(d.phase), d.Timing, d.Err))
	}()

	p.notify(ctx, events.NewStartedEvent(executionId, p.Url))

	// fetch
	if err := d.fire(ctx, triggerFetch); err != nil {
		d.halt(ctx, err)
		return d
	}
	endFetch := d.Timing.Track(constants.TimingFetch)
	artifact, err := p.fetcher.Fetch(ctx, p.Url, p.ArtifactPath)
	endFetch()
	if err != nil {
		d.halt(ctx, err)
		return d
	}
	d.Artifact = artifact
	p.notify(ctx, events.NewArtifactDownloadedEvent(executionId, artifact))

	// load
	if err := d.fire(ctx, triggerLoad); err != nil {
		d.halt(ctx, err)
		return d
	}
	endLoad := d.Timing.Track(constants.TimingLoad)
	loaded, err := p.loaderFor(artifact, p.schema).Load(ctx, artifact)
	endLoad()
	if err != nil {
		d.halt(ctx, err)
		return d
	}
	p.notify(ctx, events.NewTableLoadedEvent(executionId, artifact.LocalName, loaded.Len(), len(loaded.Columns)))

	// validate
	if err := d.fire(ctx, triggerValidate); err != nil {
		d.halt(ctx, err)
		return d
	}
	endValidate := d.Timing.Track(constants.TimingValidate)
	validated, err := loaded.Validate(p.required)
	endValidate()
	if err != nil {
		d.halt(ctx, err)
		return d
	}

	// project and coerce dates
	endProject := d.Timing.Track(constants.TimingProject)
	projected, err := validated.Project(p.required)
	if err == nil {
		projected, err = projected.CoerceDate(constants.ColumnDate)
	}
	var locations []string
	if err == nil {
		locations, err = projected.DistinctLocations(constants.ColumnLocation)
	}
	endProject()
	if err != nil {
		d.halt(ctx, err)
		return d
	}

	d.Table = projected
	d.Locations = locations
	p.notify(ctx, events.NewSchemaValidatedEvent(executionId, len(locations)))
	return d
}

// Status returns the counters aggregated over every run of this pipeline
func (p *Pipeline) Status() events.StatusCounts {
	return p.status.Snapshot()
}

func (p *Pipeline) notify(ctx context.Context, e events.Event) {
	p.status.Update(e)
	if err := p.NotifyObservers(ctx, e); err != nil {
		slog.Warn("pipeline observer failed", "error", err)
	}
}
