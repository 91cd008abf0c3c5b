package registration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// Metrics holds the form's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	Submissions     *prometheus.CounterVec
	FieldFailures   *prometheus.CounterVec
	LiveValidations *prometheus.CounterVec
}

// NewMetrics creates and registers the form collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regform_submissions_total",
			Help: "Form submissions by outcome (accepted, rejected, failed)",
		}, []string{"outcome"}),
		FieldFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regform_field_failures_total",
			Help: "Validation failures per field on submit",
		}, []string{"field"}),
		LiveValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regform_live_validations_total",
			Help: "Single-field validations by field and result",
		}, []string{"field", "result"}),
	}
}

func (m *Metrics) submission(outcome string, errs validator.ValidationErrors) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
	for _, e := range errs {
		m.FieldFailures.WithLabelValues(e.Field).Inc()
	}
}

func (m *Metrics) liveValidation(field string, valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.LiveValidations.WithLabelValues(field, result).Inc()
}
