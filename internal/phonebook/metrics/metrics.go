package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the phone book domain.
type Metrics struct {
	ItemsCreated       prometheus.Counter
	ItemsUpdated       prometheus.Counter
	ItemsDeleted       prometheus.Counter
	ValidationFailures prometheus.Counter
}

// New creates all phone book metrics and registers them on reg. Production
// passes prometheus.DefaultRegisterer; tests pass a fresh registry so repeated
// construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ItemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_items_created_total",
			Help: "Total number of phone book items created",
		}),
		ItemsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_items_updated_total",
			Help: "Total number of phone book items updated",
		}),
		ItemsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_items_deleted_total",
			Help: "Total number of phone book items deleted",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "phonebook_item_validation_failures_total",
			Help: "Total number of rejected phone book payloads",
		}),
	}
}
