package app

import (
	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	"github.com/nguyentranbao-ct/lighting-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/lighting-api/internal/server"
	"github.com/nguyentranbao-ct/lighting-api/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	conf := config.MustLoad()
	logger := mustLogger(conf.Log)
	logger.Named("app").Sugar().Debugw("config loaded",
		"addr", conf.Server.Addr(),
		"database_configured", conf.Database.Configured(),
		"products", conf.Products)
	return fx.New(Options(conf, logger, funcs...))
}

// Options wires every provider of the service around an already loaded config
// and logger.
func Options(conf *config.Config, logger *zap.Logger, funcs ...any) fx.Option {
	return fx.Options(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: logger.Named("fx"),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Supply(conf, logger),
		fx.Provide(
			newSugaredLogger,
			newMongoDB,

			server.NewHandler,

			usecase.NewProductUsecase,
			usecase.NewContactUsecase,
			usecase.NewDiagnosticsUsecase,

			mongodb.NewProductRepository,
			mongodb.NewContactRepository,
		),
		fx.Invoke(funcs...),
	)
}
