package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/search"
)

const (
	instrumentationName = "github.com/katalvlaran/gridpath"
	spanName            = "gridpath.FindPath"
)

// Tracer is a search.Recorder that emits one span per FindPath call. The span
// is back-dated so that it covers the search itself.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer on tp, or on the global provider when tp is nil.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

// ObserveSearch implements search.Recorder.
func (t *Tracer) ObserveSearch(engine string, res search.Result, err error, elapsed time.Duration) {
	end := time.Now()
	outcome := Outcome(res, err)
	_, span := t.tracer.Start(context.Background(), spanName,
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(
			attribute.String("engine", engine),
			attribute.String("outcome", outcome),
			attribute.Int("expanded", res.Expanded),
		),
	)
	if res.Found {
		span.SetAttributes(
			attribute.Int("path_length", len(res.Path)),
			attribute.Float64("cost", res.Cost),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	} else {
		span.SetStatus(codes.Ok, outcome)
	}
	span.End(trace.WithTimestamp(end))
}

// Fanout forwards every observation to each of its recorders in order.
type Fanout []search.Recorder

// ObserveSearch implements search.Recorder.
func (f Fanout) ObserveSearch(engine string, res search.Result, err error, elapsed time.Duration) {
	for _, r := range f {
		if r != nil {
			r.ObserveSearch(engine, res, err, elapsed)
		}
	}
}

var (
	_ search.Recorder = (*Tracer)(nil)
	_ search.Recorder = Fanout(nil)
)
