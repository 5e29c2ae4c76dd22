package handler

import (
	"net/http"

	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer"
	"github.com/freelahub/agency-ops-api/internal/api/handler/router"
	"github.com/freelahub/agency-ops-api/internal/usecases/analyzing"
	"github.com/freelahub/agency-ops-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/aggregate",
			Method:      http.MethodPost,
			Handler:     AggregateCollections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Rates(service currencylayer.RatesIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rates",
			Method:      http.MethodGet,
			Handler:     GetRates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
