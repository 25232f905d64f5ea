package bootstrap

import (
	"lead-capture/internal/pkg/metrics"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			NewLeadMetrics,
			fx.As(fx.Self()),
			fx.As(new(commands.SubmissionObserver)),
			fx.As(new(queries.FetchObserver)),
		),
	),
)

// One registry per app so that several apps in one test process do not collide.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewLeadMetrics(reg *prometheus.Registry) *metrics.LeadMetrics {
	return metrics.NewLeadMetrics(reg)
}
