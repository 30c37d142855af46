package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Leonardo777l/Finanzas-Leo/internal/handlers"
	"github.com/Leonardo777l/Finanzas-Leo/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	txh := handlers.NewTransactionHandlers(deps)
	ash := handlers.NewAssetHandlers(deps)
	gh := handlers.NewGoalHandlers(deps)
	sbh := handlers.NewSubscriptionHandlers(deps)
	anh := handlers.NewAnalyticsHandlers(deps)
	bkh := handlers.NewBackupHandlers(deps)
	auh := handlers.NewAuthHandlers(deps)
	syh := handlers.NewSyncHandlers(deps)
	seh := handlers.NewSettingsHandlers(deps)

	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/assets", ash.AssetRoutes())
	r.Mount("/goals", gh.GoalRoutes())
	r.Mount("/subscriptions", sbh.SubscriptionRoutes())
	r.Mount("/analytics", anh.AnalyticsRoutes())
	r.Mount("/backup", bkh.BackupRoutes())
	r.Mount("/auth", auh.AuthRoutes())
	r.Mount("/sync", syh.SyncRoutes())
	r.Mount("/settings", seh.SettingsRoutes())

	return r
}
