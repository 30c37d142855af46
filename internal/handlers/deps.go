package handlers

import (
	"log/slog"

	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler

	TransactionSvc  TransactionService
	PortfolioSvc    PortfolioService
	GoalSvc         GoalService
	SubscriptionSvc SubscriptionService
	AnalyticsSvc    AnalyticsService
	BackupSvc       BackupService

	Verifier TokenVerifier
	Identity IdentityNotifier
	Sync     SyncStatusSource
	Settings SettingsStore
}
