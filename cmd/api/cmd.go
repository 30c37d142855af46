package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/Leonardo777l/Finanzas-Leo/internal/bootstrap"
	"github.com/Leonardo777l/Finanzas-Leo/internal/config"
	"github.com/Leonardo777l/Finanzas-Leo/internal/handlers"
	"github.com/Leonardo777l/Finanzas-Leo/internal/identity"
	"github.com/Leonardo777l/Finanzas-Leo/internal/localstore"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
	"github.com/Leonardo777l/Finanzas-Leo/internal/router"
	"github.com/Leonardo777l/Finanzas-Leo/internal/services"
	"github.com/Leonardo777l/Finanzas-Leo/internal/state"
	"github.com/Leonardo777l/Finanzas-Leo/internal/store"
	syncctl "github.com/Leonardo777l/Finanzas-Leo/internal/sync"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// domain store with local write-through persistence
	blob := localstore.NewFile(cfg.StoragePath)
	st := state.New(bs.Log, blob, cfg.Currency)
	if data, ok, err := blob.Load(); err != nil {
		bs.Log.Error("failed to read local snapshot", "error", err)
	} else if ok {
		st.Hydrate(data)
	}

	// remote sync
	snapshots := store.NewSnapshotStore(bs.Firestore)
	notifier := identity.NewNotifier(bs.Log)
	controller := syncctl.New(bs.Log, snapshots, st, notifier.Events(), cfg.SyncDebounce)
	st.Subscribe(controller.NotifyChange)
	go controller.Run(context.Background())
	notifier.Resolve("") // no persisted session; every run starts signed out

	// services
	txserv := services.NewTransactionService(st)
	pfserv := services.NewPortfolioService(st)
	glserv := services.NewGoalService(st)
	sbserv := services.NewSubscriptionService(st)
	anserv := services.NewAnalyticsService(st)
	bkserv := services.NewBackupService(st)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = txserv
	deps.PortfolioSvc = pfserv
	deps.GoalSvc = glserv
	deps.SubscriptionSvc = sbserv
	deps.AnalyticsSvc = anserv
	deps.BackupSvc = bkserv
	deps.Verifier = bs.Firebase
	deps.Identity = notifier
	deps.Sync = controller
	deps.Settings = st

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
