package registration

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/validator"
	"github.com/dmitrymomot/regform/svc/countries"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// SubmitFunc receives a fully valid snapshot. It is called at most once per
// successful submission.
type SubmitFunc func(ctx context.Context, values FormValues) error

// LogSubmission returns a SubmitFunc that records the submission on log with
// the passwords redacted.
func LogSubmission(log *slog.Logger) SubmitFunc {
	return func(ctx context.Context, values FormValues) error {
		log.InfoContext(ctx, "registration submitted",
			logger.Component("registration"),
			logger.Event("form_submitted"),
			slog.Any("values", values),
		)
		return nil
	}
}

// Form is the validation authority of the registration form.
type Form struct {
	lookup   countries.Lookup
	onSubmit SubmitFunc
	log      *slog.Logger
	metrics  *Metrics
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithOnSubmit replaces the default logging submitter.
func WithOnSubmit(fn SubmitFunc) FormOption {
	return func(f *Form) {
		if fn != nil {
			f.onSubmit = fn
		}
	}
}

// WithLogger sets the form logger.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMetrics records submissions and live validations on m.
func WithMetrics(m *Metrics) FormOption {
	return func(f *Form) { f.metrics = m }
}

// NewForm returns a Form checking countries against lookup.
func NewForm(lookup countries.Lookup, opts ...FormOption) *Form {
	f := &Form{
		lookup: lookup,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.onSubmit == nil {
		f.onSubmit = LogSubmission(f.log)
	}
	return f
}

// Validate checks the whole snapshot. See Validate.
func (f *Form) Validate(values FormValues) error {
	return Validate(values, f.lookup)
}

// ValidateField checks one field and records the result.
func (f *Form) ValidateField(field string, values FormValues) error {
	err := ValidateField(field, values, f.lookup)
	if err == nil || validator.IsValidationError(err) {
		f.metrics.liveValidation(field, err == nil)
	}
	return err
}

// Submit validates values and, when every field passes, forwards them to the
// submit callback exactly once. Invalid snapshots return the validation
// errors and never reach the callback.
func (f *Form) Submit(ctx context.Context, values FormValues) error {
	if err := f.Validate(values); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		f.metrics.submission(outcomeRejected, verrs)
		f.log.DebugContext(ctx, "registration rejected",
			logger.Component("registration"),
			logger.Fields(verrs.Fields()),
		)
		return err
	}

	if err := f.onSubmit(ctx, values); err != nil {
		f.metrics.submission(outcomeFailed, nil)
		return err
	}
	f.metrics.submission(outcomeAccepted, nil)
	return nil
}
