package wehttp

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-webapp-go/message"
	"github.com/weegigs/wee-webapp-go/we"
)

const DefaultIndexFile = "index.html"

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// Static serves index from files at the root path.
func Static(files fs.FS, index string) HandlerOption {
	return func(service *httpService) {
		service.files = files
		service.index = index
	}
}

func WithMetrics(metrics *Metrics) HandlerOption {
	return func(service *httpService) {
		service.metrics = metrics
	}
}

func NewHandler(messages *message.Service, options ...HandlerOption) http.Handler {
	service := &httpService{messages: messages}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}
	if service.index == "" {
		service.index = DefaultIndexFile
	}

	r := chi.NewRouter()

	r.Use(withRequestID(service.log))
	r.Use(withLogging)
	if service.metrics != nil {
		r.Use(service.metrics.instrument)
	}
	r.Use(middleware.Recoverer)

	r.Get("/", service.getIndex())
	r.Get("/healthz", service.getHealth())

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/message", service.getMessage())
	})

	if service.metrics != nil {
		r.Method(http.MethodGet, "/metrics", service.metrics.Handler())
	}

	return WithTelemetry(r, "wee-webapp")
}

type httpService struct {
	log      *zerolog.Logger
	messages *message.Service
	files    fs.FS
	index    string
	metrics  *Metrics
}

func (service *httpService) getMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := service.messages.Handle(r.Context())
		if err != nil {
			service.fail(w, r, err, "failed to handle message")
			return
		}

		if service.metrics != nil {
			service.metrics.messageServed()
		}

		encode(w, r, http.StatusOK, msg)
	}
}

func (service *httpService) getIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := serveFile(w, r, service.files, service.index); err != nil {
			service.fail(w, r, err, "failed to serve index")
		}
	}
}

func (service *httpService) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

func (service *httpService) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger := zerolog.Ctx(r.Context())

	if we.IsNotFound(err) {
		logger.Info().Err(err).Msg(msg)
		_ = render.Render(w, r, errNotFound)
		return
	}

	logger.Error().Err(err).Msg(msg)
	_ = render.Render(w, r, errInternal)
}

// encode writes v as JSON. The body is marshalled before any header is written so that
// encoding failures can still be reported as a 500.
func encode(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(errors.Wrap(err, "failed to encode response")).Msg("encode")
		_ = render.Render(w, r, errInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
