package app

import (
	"github.com/robfig/cron/v3"

	"github.com/devservices/devshop/config"
	"github.com/devservices/devshop/internal/cart"
	"github.com/devservices/devshop/internal/catalog"
)

// StoreProvider provides repository access
type StoreProvider interface {
	Products() catalog.ProductRepository
	Carts() cart.Repository
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	StoreProvider
	ConfigProvider
	SchedulerProvider
}
