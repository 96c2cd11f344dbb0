package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/devservices/devshop/config"
	"github.com/devservices/devshop/internal/cart"
	"github.com/devservices/devshop/internal/catalog"
)

type Application struct {
	appConfig   *config.AppConfig
	mongoClient *mongo.Client
	database    *mongo.Database
	products    catalog.ProductRepository
	carts       cart.Repository
	sched       *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ StoreProvider     = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Products() catalog.ProductRepository {
	return a.products
}

func (a *Application) Carts() cart.Repository {
	return a.carts
}

// OverrideStores replaces the application's repositories (used in tests).
func (a *Application) OverrideStores(products catalog.ProductRepository, carts cart.Repository) {
	a.products = products
	a.carts = carts
}

// Init brings up logging, the store connection, the one-time catalog
// seed and the background jobs. A failed store connection aborts
// initialization; a failed seed does not.
func (a *Application) Init(ctx context.Context) error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		return err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return err
	}
	a.mongoClient = client
	a.database = client.Database(cfg.Database.Name)
	zap.S().Infof("Database connection successful, name: %s", cfg.Database.Name)

	a.products = catalog.NewMongoProductRepository(a.database, cfg.Catalog.MaxFetch)
	a.carts = cart.NewMongoCartRepository(a.database)

	if err := catalog.SeedIfEmpty(ctx, a.products); err != nil {
		zap.L().Error("catalog seeding failed", zap.Error(err))
	}

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}

	if a.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.mongoClient.Disconnect(ctx)
	}

	_ = zap.L().Sync()
}
