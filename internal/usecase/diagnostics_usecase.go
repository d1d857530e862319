package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/nguyentranbao-ct/lighting-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/lighting-api/pkg/logctx"
	"github.com/nguyentranbao-ct/lighting-api/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxReportedCollections = 10
	maxErrorLength         = 50
	diagnosticsTimeout     = 5 * time.Second
)

// StoreInspector is the read-only view of the store used for diagnostics.
type StoreInspector interface {
	Available() bool
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}

var _ StoreInspector = (*mongodb.DB)(nil)

type DiagnosticsUsecase interface {
	Report(ctx context.Context) models.DiagnosticReport
}

type diagnosticsUsecase struct {
	store StoreInspector
	conf  config.DatabaseConfig
	log   *zap.SugaredLogger
}

func NewDiagnosticsUsecase(cfg *config.Config, db *mongodb.DB, log *zap.SugaredLogger) DiagnosticsUsecase {
	return newDiagnosticsUsecase(cfg.Database, db, log)
}

func newDiagnosticsUsecase(conf config.DatabaseConfig, store StoreInspector, log *zap.SugaredLogger) *diagnosticsUsecase {
	return &diagnosticsUsecase{
		store: store,
		conf:  conf,
		log:   log.Named("diagnostics"),
	}
}

// Report never fails. Introspection errors and panics end up truncated in
// Database.Error.
func (uc *diagnosticsUsecase) Report(ctx context.Context) (report models.DiagnosticReport) {
	report = models.DiagnosticReport{
		Backend:          "running",
		ConnectionStatus: models.ConnectionNotConnected,
		Env: map[string]bool{
			"DATABASE_URL":  uc.conf.URL != "",
			"DATABASE_NAME": uc.conf.Name != "",
		},
		Collections: []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			logctx.From(ctx, uc.log).Errorw("diagnostics panicked", "panic", r)
			report.Database.Error = errorText(fmt.Errorf("%v", r))
		}
	}()

	if !uc.store.Available() {
		return report
	}
	report.Database.Available = true
	report.Database.Name = util.Ptr(uc.store.Name())

	ctx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
	defer cancel()

	var (
		group   errgroup.Group
		pingErr error
		listErr error
		names   []string
	)
	group.Go(func() error {
		pingErr = recoverCall(func() error {
			return uc.store.Ping(ctx)
		})
		return nil
	})
	group.Go(func() error {
		listErr = recoverCall(func() error {
			var err error
			names, err = uc.store.CollectionNames(ctx, maxReportedCollections)
			return err
		})
		return nil
	})
	_ = group.Wait()

	if pingErr == nil {
		report.Database.Connected = true
		report.ConnectionStatus = models.ConnectionConnected
	}
	if listErr == nil && names != nil {
		report.Collections = names
	}

	switch {
	case pingErr != nil:
		report.Database.Error = errorText(pingErr)
	case listErr != nil:
		report.Database.Error = errorText(listErr)
	}
	if report.Database.Error != nil {
		logctx.From(ctx, uc.log).Warnw("database diagnostics degraded", "error", *report.Database.Error)
	}

	return report
}

func recoverCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func errorText(err error) *string {
	return util.Ptr(util.Truncate(err.Error(), maxErrorLength))
}
