package page

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"latina/config"
	"latina/infras/otel"
	"latina/internal/catalog"
	"latina/internal/domains/reservation/form"
	"latina/internal/domains/reservation/model/dto"
	"latina/internal/domains/reservation/service"
	"latina/internal/view"
	"latina/shared/constant"
	"latina/shared/contact"
	"latina/shared/failure"
	"latina/shared/locale"
	"latina/shared/session"
	"latina/shared/timezone"
)

const (
	formAttachmentKey = "reservation.form."

	actionDismiss = "dismiss"

	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

type Handler struct {
	service  service.Reservation
	sessions *session.Registry
	renderer *view.Renderer
	config   *config.Config
	otel     otel.Otel
}

func New(service service.Reservation, sessions *session.Registry, renderer *view.Renderer, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		config:   config,
		otel:     otel,
	}
}

// Router mounts the localized pages. The prefix only matches a supported
// locale code, so paths the locale middleware lets through untouched (such as
// /robots.txt) fall to the not-found handler instead of the home page.
func (handler *Handler) Router(router chi.Router) {
	router.Route(localePattern(), func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.page(view.Home, "/"))
		routerGroup.Get("/menu", handler.page(view.Menu, "/menu"))
		routerGroup.Get("/contact", handler.page(view.Contact, "/contact"))
		routerGroup.Get("/reservations", handler.GetReservations)
		routerGroup.Post("/reservations", handler.PostReservations)
		routerGroup.NotFound(handler.NotFound)
	})
}

func (handler *Handler) page(name view.Name, route string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Page")
		defer scope.End()

		scope.SetAttribute("page.name", string(name))

		data := handler.base(request, route)
		data.Meta = meta(data.Messages, name)
		data.Intro = handler.intro(writer, request)

		handler.render(writer, http.StatusOK, name, data)
	}
}

// NotFound renders the 404 page in the request's locale, or the default
// locale when the path did not carry a supported one. It never starts a
// session.
func (handler *Handler) NotFound(writer http.ResponseWriter, request *http.Request) {
	data := handler.base(request, "/")
	data.Meta = catalog.PageMeta{
		Title:       data.Messages.NotFound.Title,
		Description: data.Messages.NotFound.Message,
	}

	handler.render(writer, http.StatusNotFound, view.NotFound, data)
}

func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	data := handler.base(request, "/reservations")
	sess := handler.sessions.Init(writer, request)
	data.Intro = handler.introFor(sess)
	controller := handler.controller(sess, data.Locale)

	handler.renderForm(writer, http.StatusOK, data, controller)
}

// PostReservations feeds the submitted fields through the session's form
// controller and renders the outcome: field errors, the acknowledgment or the
// generic failure with the call and chat fallbacks.
func (handler *Handler) PostReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostReservations")
	defer scope.End()

	data := handler.base(request, "/reservations")
	sess := handler.sessions.Init(writer, request)
	data.Intro = handler.introFor(sess)
	controller := handler.controller(sess, data.Locale)

	request.Body = http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)
	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse reservation form")

		handler.renderForm(writer, http.StatusBadRequest, data, controller)

		return
	}

	if request.PostForm.Get("action") == actionDismiss {
		controller.Dismiss()
		handler.renderForm(writer, http.StatusOK, data, controller)

		return
	}

	controller.Dismiss()

	for _, field := range form.Fields() {
		if !request.PostForm.Has(string(field)) {
			continue
		}

		if err := controller.UpdateField(field, request.PostForm.Get(string(field))); err != nil {
			log.Warn().Err(err).Str("field", string(field)).Msg("failed to update reservation field")

			handler.renderForm(writer, http.StatusConflict, data, controller)

			return
		}
	}

	_, err := controller.Submit(ctx)

	status := http.StatusOK

	switch {
	case err == nil:
		scope.AddEvent("Reservation submitted")
	case errors.Is(err, form.ErrInvalid):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, form.ErrBusy):
		status = http.StatusConflict
	default:
		scope.TraceError(err)
	}

	handler.renderForm(writer, status, data, controller)
}

// base fills the parts every page shares.
func (handler *Handler) base(request *http.Request, route string) view.Page {
	loc := locale.FromContext(request.Context())
	if param, ok := locale.Parse(chi.URLParam(request, constant.RequestParamLocale)); ok {
		loc = param
	}

	messages := catalog.MustLoad(loc).Messages
	app := handler.config.App

	alternates := make([]view.Alternate, 0, len(locale.All()))
	for _, alt := range locale.All() {
		alternates = append(alternates, view.Alternate{
			Locale:  alt,
			Label:   alt.Label(),
			Href:    "/" + alt.String() + route,
			Current: alt == loc,
		})
	}

	return view.Page{
		Locale:     loc,
		Route:      route,
		Messages:   messages,
		Meta:       messages.Meta.Home,
		Alternates: alternates,
		Contact: view.ContactInfo{
			Phone:        app.Contact.Phone,
			CallLink:     template.URL(contact.CallLink(app.Contact.Phone)), // nolint:gosec
			WhatsAppLink: contact.WhatsAppLink(app.Contact.WhatsApp, ""),
			Instagram:    app.Contact.Instagram,
			Address:      app.Contact.Address,
			MapsLink:     mapsSearchURL + url.QueryEscape(app.Contact.Address),
		},
		Year: timezone.Now().Year(),
	}
}

// intro starts or resumes a session only when the intro overlay is enabled,
// the one piece of state the plain pages keep.
func (handler *Handler) intro(writer http.ResponseWriter, request *http.Request) view.Intro {
	if !handler.config.App.Intro.Enable {
		return view.Intro{}
	}

	return handler.introFor(handler.sessions.Init(writer, request))
}

func (handler *Handler) introFor(sess *session.Session) view.Intro {
	app := handler.config.App

	return view.Intro{
		Show:        app.Intro.Enable && sess.ConsumeIntro(),
		DelayMillis: app.Intro.DelayMillis,
	}
}

// controller returns the session's form for loc, creating it on first use.
func (handler *Handler) controller(sess *session.Session, loc locale.Locale) *form.Controller {
	key := formAttachmentKey + loc.String()

	if attached, ok := sess.Attachment(key); ok {
		if controller, ok := attached.(*form.Controller); ok {
			return controller
		}
	}

	app := handler.config.App
	opts := []form.Option{
		form.WithLocation(timezone.GetLocation()),
		form.WithContact(app.Contact.Phone, app.Contact.WhatsApp),
	}

	if app.Reservation.ResetDelaySeconds > 0 {
		opts = append(opts, form.WithResetDelay(time.Duration(app.Reservation.ResetDelaySeconds)*time.Second))
	}

	controller := form.New(handler.submitter(loc), catalog.MustLoad(loc), opts...)

	sess.Attach(key, controller)

	return controller
}

// submitter hands validated forms straight to the reservation service, so
// page submissions follow the same rules as POST /api/reservations.
func (handler *Handler) submitter(loc locale.Locale) form.Submitter {
	return form.SubmitterFunc(func(ctx context.Context, values form.Values) (form.Acknowledgment, error) {
		res, err := handler.service.Create(ctx, dto.NewCreateReservationRequest(values, loc))
		if err != nil {
			reason := constant.ResponseErrorInternal

			var fail *failure.Failure
			if errors.As(err, &fail) && failure.IsClientError(err) {
				reason = fail.Message
			}

			return form.Acknowledgment{}, &form.SubmissionError{
				Status: failure.GetCode(err),
				Reason: reason,
				Err:    err,
			}
		}

		return res.ToAcknowledgment(constant.ResponseMessageReservationOK), nil
	})
}

func (handler *Handler) renderForm(writer http.ResponseWriter, status int, data view.Page, controller *form.Controller) {
	data.Meta = data.Messages.Meta.Reservations

	errs := controller.Errors()
	messages := make(map[form.Field]string, len(errs))
	for field, fieldErr := range errs {
		messages[field] = fieldErr.Message
	}

	f := &view.Form{
		Values:       controller.Values(),
		Errors:       messages,
		Slots:        controller.Slots(),
		MinDate:      timezone.Now().Format(constant.DateOnlyFormat),
		Failed:       controller.State() == form.Failed,
		WhatsAppLink: controller.WhatsAppLink(),
		CallLink:     template.URL(controller.CallLink()), // nolint:gosec
	}

	if ack, ok := controller.Acknowledgment(); ok {
		f.Acknowledgment = &ack
	}

	data.Form = f

	handler.render(writer, status, view.Reservations, data)
}

func (handler *Handler) render(writer http.ResponseWriter, status int, name view.Name, data view.Page) {
	if err := handler.renderer.Render(writer, status, name, data); err != nil {
		log.Error().Err(err).Str("page", string(name)).Msg("failed to render page")

		http.Error(writer, constant.ResponseErrorInternal, http.StatusInternalServerError)
	}
}

func localePattern() string {
	codes := make([]string, 0, len(locale.All()))
	for _, loc := range locale.All() {
		codes = append(codes, regexp.QuoteMeta(loc.String()))
	}

	return "/{" + constant.RequestParamLocale + ":(?:" + strings.Join(codes, "|") + ")}"
}

func meta(messages *catalog.Messages, name view.Name) catalog.PageMeta {
	switch name {
	case view.Menu:
		return messages.Meta.Menu
	case view.Reservations:
		return messages.Meta.Reservations
	case view.Contact:
		return messages.Meta.Contact
	default:
		return messages.Meta.Home
	}
}
