// Package http реализует маршрутизацию HTTP-слоя сервера AquaMate.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (request id, recover, логирование, CORS, лимит тела, метрики);
//   - служебные эндпоинты /health, /metrics и /swagger.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/api"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/middleware"
)

// APIPrefix — префикс всех маршрутов API.
const APIPrefix = "/api/v1"

// id в пути только числовой, всё остальное не совпадает с маршрутом и даёт 404
const (
	idParam          = "/{id:[0-9]+}"
	userIDParam      = "/{user_id:[0-9]+}"
	waterIDParam     = "/{water_id:[0-9]+}"
	userStampIDParam = "/{user_stamp_id:[0-9]+}"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// cfg может быть nil, тогда используются значения по умолчанию
// (CORS для всех origin, лимит тела 1 MiB, без метрик и swagger).
func NewRouter(h *api.Handler, cfg *config.Config) http.Handler {
	if cfg == nil {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer(h.Log))
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	if cfg.Observability.Metrics.Enabled {
		r.Use(metrics.InstrumentHandler)
	}
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge)))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.Get("/health", h.Health)

	if cfg.Observability.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Observability.Metrics.Path, metrics.Handler())
	}
	// добавляем swagger
	if cfg.Swagger.Enabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get(idParam, h.GetUser)
			r.Put(idParam, h.UpdateUser)
			r.Get("/nearby"+idParam, h.Nearby)
		})

		r.Route("/water_records", func(r chi.Router) {
			r.Get(userIDParam, h.ListWaterRecords)
			r.Post(userIDParam, h.CreateWaterRecord)
			r.Put(waterIDParam, h.UpdateWaterRecord) // обновляем запись по water_id
			r.Get("/today"+userIDParam, h.ListTodayWaterRecords)
			r.Get("/now"+userIDParam, h.LatestWaterRecord)
		})

		// подроутер отвечает и на /stamps, и на /stamps/
		r.Route("/stamps", func(r chi.Router) {
			r.Get("/", h.ListStamps)
			r.Get(idParam, h.GetStamp)
			r.Post("/send", h.SendStamp)
			r.Get("/send"+userIDParam, h.ReceivedStamps) // входящие
			r.Get("/sent"+userIDParam, h.SentStamps)
			r.Put("/reply"+userStampIDParam, h.ReplyStamp)
			r.Put("/apply"+userStampIDParam, h.ReplyStamp) // так зовёт мобильный клиент
		})
	})

	return r
}
