package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/razorpay-go-client/api/controllers"
	webhookcontrollers "github.com/angelmondragon/razorpay-go-client/api/controllers/webhooks"
	"github.com/angelmondragon/razorpay-go-client/api/middleware"
	"github.com/angelmondragon/razorpay-go-client/pkg/config"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/redis"
)

// Dependencies are the collaborators the webhook listener routes need.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Gatherer prometheus.Gatherer
	Store    redis.Pinger
	Webhook  webhookcontrollers.RazorpayWebhookParams
}

func NewRouter(deps Dependencies) http.Handler {
	logg := deps.Logger
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(logg, deps.Store))
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	path := "/webhooks/razorpay"
	if deps.Config != nil && deps.Config.Webhook.Path != "" {
		path = deps.Config.Webhook.Path
	}
	r.Post(path, webhookcontrollers.RazorpayWebhook(deps.Webhook))

	return r
}
