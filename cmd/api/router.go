package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/xblinx/attachments/internal/album"
	"github.com/xblinx/attachments/internal/attachment"
	"github.com/xblinx/attachments/internal/config"
	appMiddleware "github.com/xblinx/attachments/internal/middleware"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/resume"
	"github.com/xblinx/attachments/internal/storage"

	_ "github.com/xblinx/attachments/docs/swagger"
)

// multipart parts beyond this stay on disk while parsing.
const multipartMemory = 8 << 20

// deps are the long-lived collaborators the handlers are built from.
type deps struct {
	store      storage.Storage
	candidates resume.CandidateStore
	notifier   notify.Notifier
}

func newRouter(cfg *config.Config, d deps) http.Handler {
	// Wire dependencies: storage → service → handler
	svc := attachment.NewService(d.store)
	attachmentHandler := attachment.NewHandler(svc, d.notifier, multipartMemory)
	albumHandler := album.NewHandler(svc, d.notifier, multipartMemory)
	resumeHandler := resume.NewHandler(svc, d.candidates, d.notifier, multipartMemory)

	upload := chi.Chain(
		appMiddleware.RateLimit(cfg.UploadRateLimit),
		appMiddleware.LimitBody(cfg.MaxUploadSize),
	)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:     []string{"Content-Disposition"},
		MaxAge:             300,
		OptionsPassthrough: false,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1/s3", func(r chi.Router) {
		if cfg.AuthEnabled() {
			r.Use(appMiddleware.RequireAuth(cfg.JWTSecret))
		}
		if cfg.RequestTimeout > 0 {
			r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
		}

		r.With(upload...).Post("/", attachmentHandler.Upload)
		r.Get("/", attachmentHandler.List)
		r.Delete("/", attachmentHandler.Delete)
		r.Get("/download", attachmentHandler.Download)
		r.Get("/preview", attachmentHandler.Preview)
		r.Delete("/all", attachmentHandler.DeleteAll)

		r.Route("/resume", func(r chi.Router) {
			r.With(upload...).Post("/", resumeHandler.Upload)
			r.Delete("/", resumeHandler.Delete)
			r.Get("/download", resumeHandler.Download)
		})

		r.Route("/image", func(r chi.Router) {
			r.With(upload...).Post("/", albumHandler.UploadImage)
			r.Get("/", albumHandler.ListImages)
			r.Delete("/", albumHandler.DeleteImage)
			r.Get("/download", albumHandler.DownloadImage)
			r.Delete("/all", albumHandler.DeleteAllImages)
		})
	})

	return r
}

// serverTimeouts keeps the server's read and write deadlines a little above
// the per-request timeout.
func serverTimeouts(requestTimeout time.Duration) (read, write time.Duration) {
	if requestTimeout <= 0 {
		return 15 * time.Second, 15 * time.Second
	}
	return requestTimeout + 5*time.Second, requestTimeout + 5*time.Second
}
