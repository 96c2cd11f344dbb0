package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 10m", func() {
		go a.SchedStoreStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	if days := a.appConfig.Cart.TTLDays; days > 0 {
		_, err = a.sched.AddFunc("@daily", func() {
			a.SchedPurgeStaleCarts(days)
		})
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	a.sched.Start()
}

// SchedStoreStatsTask logs document counts for the shop collections.
func (a *Application) SchedStoreStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := a.products.Count(ctx)
	if err != nil {
		zap.L().Warn("store stats: product count failed", zap.Error(err))
		return
	}
	carts, err := a.carts.Count(ctx)
	if err != nil {
		zap.L().Warn("store stats: cart count failed", zap.Error(err))
		return
	}
	zap.L().Info("store stats", zap.Int64("products", products), zap.Int64("carts", carts))
}

// SchedPurgeStaleCarts removes carts whose last save is older than the
// configured TTL. Only scheduled when cart.ttl_days > 0; the default
// keeps every cart forever.
func (a *Application) SchedPurgeStaleCarts(days int) {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	before := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	purged, err := a.carts.DeleteOlderThan(ctx, before)
	if err != nil {
		zap.L().Error("stale cart purge failed", zap.Error(err))
		return
	}
	if purged > 0 {
		zap.L().Info("purged stale carts", zap.Int64("count", purged), zap.Time("before", before))
	}
}
