package registration

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/validator"
	"github.com/dmitrymomot/regform/svc/countries"
)

// Catalog is the read-only view of the country list the service renders.
type Catalog interface {
	countries.Lookup
	Entries() []countries.Entry
	Loaded() bool
	Reconcile(selected string) string
}

// Service serves the registration form over HTTP.
type Service struct {
	form         *Form
	catalog      Catalog
	views        *Views
	log          *slog.Logger
	title        string
	basePath     string
	errorHandler handler.ErrorHandler
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithViews replaces some or all default components.
func WithViews(v *Views) ServiceOption {
	return func(s *Service) { s.views = v }
}

// WithServiceLogger sets the logger used for request errors.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTitle sets the page title.
func WithTitle(title string) ServiceOption {
	return func(s *Service) { s.title = title }
}

// WithBasePath sets the path the service is mounted under, used to build
// form and live-validation URLs.
func WithBasePath(p string) ServiceOption {
	return func(s *Service) { s.basePath = strings.TrimRight(p, "/") }
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h handler.ErrorHandler) ServiceOption {
	return func(s *Service) { s.errorHandler = h }
}

// NewService returns a Service validating with form and listing catalog.
func NewService(form *Form, catalog Catalog, opts ...ServiceOption) *Service {
	s := &Service{
		form:    form,
		catalog: catalog,
		log:     logger.Discard(),
		title:   "Registration",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = s.views.withDefaults()
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage: func(p handler.ErrorPageParams) handler.TemplComponent {
				return s.views.ErrorPage(p)
			},
			ErrorToast: func(p handler.ErrorToastParams) handler.TemplComponent {
				return s.views.ErrorToast(p)
			},
			ToastTarget: "#" + toastElementID,
		})
	}
	return s
}

// Handle returns the service router.
//
//	GET  /                 form page
//	POST /                 submit
//	POST /validate/{field} live validation of one field
//	GET  /countries        loaded country list as JSON
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page, handler.WithErrorHandler(s.errorHandler)))
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders(bindValues()),
		handler.WithErrorHandler(s.errorHandler),
	))
	r.Post("/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders(bindValues()),
		handler.WithErrorHandler(s.errorHandler),
	))
	r.Get("/countries", handler.Wrap(s.listCountries, handler.WithErrorHandler(s.errorHandler)))

	return r
}

// bindValues reads Datastar signals from Datastar requests and the urlencoded
// body from plain form posts.
func bindValues() handler.Bind {
	form, signals := binder.Form(), binder.Signals()
	return func(r *http.Request, v any) error {
		if handler.IsDataStar(r) {
			return signals(r, v)
		}
		return form(r, v)
	}
}

func (s *Service) formParams(values FormValues, errs validator.ValidationErrors) FormParams {
	values.Country = s.catalog.Reconcile(values.Country)

	var messages map[string]string
	if len(errs) > 0 {
		messages = make(map[string]string, len(errs))
		for _, e := range errs {
			if _, seen := messages[e.Field]; !seen {
				messages[e.Field] = e.Message
			}
		}
	}

	return FormParams{
		Action:      s.basePath + "/",
		ValidateURL: s.basePath + "/validate/",
		Values:      values,
		Errors:      messages,
		Countries:   s.catalog.Entries(),
	}
}

func (s *Service) renderPage(content templ.Component) templ.Component {
	return s.views.Page(PageParams{Title: s.title, Content: content})
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.renderPage(s.views.Form(s.formParams(FormValues{}, nil))))
}

func (s *Service) submit(ctx handler.Context, values FormValues) handler.Response {
	err := s.form.Submit(ctx, values)
	if err == nil {
		success := s.views.Success(SuccessParams{FirstName: values.FirstName, Email: values.Email})
		return handler.TemplPartial(success, s.renderPage(success),
			handler.WithTarget("#"+formElementID),
			handler.WithPatchMode(handler.PatchOuter),
		)
	}

	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return errorResponse{err: err}
	}

	form := s.views.Form(s.formParams(values, verrs))
	return handler.TemplPartial(form, s.renderPage(form),
		handler.WithTarget("#"+formElementID),
		handler.WithPatchMode(handler.PatchOuter),
	).WithStatus(http.StatusUnprocessableEntity)
}

func (s *Service) validateField(ctx handler.Context, values FormValues) handler.Response {
	field := chi.URLParam(ctx.Request(), "field")
	if !KnownField(field) {
		return errorResponse{err: handler.ErrNotFound}
	}

	var patches []handler.TemplPatch
	for _, f := range DependentFields(field) {
		err := s.form.ValidateField(f, values)
		var message string
		if err != nil {
			verrs := validator.ExtractValidationErrors(err)
			if len(verrs) == 0 {
				return errorResponse{err: err}
			}
			message = verrs.First(f)
		}
		patches = append(patches, handler.Patch(
			s.views.FieldError(FieldErrorParams{Field: f, Message: message}),
			handler.WithTarget("#"+FieldErrorID(f)),
		))
	}
	return handler.TemplMulti(patches...)
}

func (s *Service) listCountries(_ handler.Context, _ struct{}) handler.Response {
	entries := s.catalog.Entries()
	return handler.JSON(entries, handler.WithJSONMeta(map[string]any{
		"loaded": s.catalog.Loaded(),
		"count":  len(entries),
	}))
}

// errorResponse hands err to the error handler through Wrap's render path.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}
