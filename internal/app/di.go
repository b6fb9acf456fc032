package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/parts-inventory/internal/config"
	"github.com/you-humble/parts-inventory/internal/converter"
	repository "github.com/you-humble/parts-inventory/internal/repository/inventory"
	partsvc "github.com/you-humble/parts-inventory/internal/service/part"
	invproducer "github.com/you-humble/parts-inventory/internal/service/producer/inventory"
	productsvc "github.com/you-humble/parts-inventory/internal/service/product"
	"github.com/you-humble/parts-inventory/internal/transport/http/health"
	thttp "github.com/you-humble/parts-inventory/internal/transport/http/inventory/v1"
	"github.com/you-humble/parts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/parts-inventory/platform/closer"
	"github.com/you-humble/parts-inventory/platform/kafka/producer"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type InventoryHandler interface {
	Routes(r chi.Router)
}

type di struct {
	store *repository.Store

	syncProducer sarama.SyncProducer
	events       partsvc.EventSender

	partService    thttp.PartService
	productService thttp.ProductService
	handler        InventoryHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) Store(_ context.Context) *repository.Store {
	if d.store == nil {
		d.store = repository.NewStore()
	}

	return d.store
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.InventoryEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

// EventSender publishes to Kafka when it is enabled and drops events
// otherwise.
func (d *di) EventSender(ctx context.Context) partsvc.EventSender {
	if d.events == nil {
		if config.C() == nil || !config.C().Kafka.Enabled() {
			d.events = invproducer.Nop{}
			return d.events
		}

		d.events = invproducer.NewInventoryProducer(
			producer.NewProducer(
				d.SyncProducer(ctx),
				config.C().Kafka.InventoryEventsTopic(),
				logger.L(),
			),
			converter.NewKafkaConverter(),
		)
	}

	return d.events
}

func (d *di) PartService(ctx context.Context) thttp.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(d.Store(ctx), d.EventSender(ctx))
	}

	return d.partService
}

func (d *di) ProductService(ctx context.Context) thttp.ProductService {
	if d.productService == nil {
		store := d.Store(ctx)
		d.productService = productsvc.NewProductService(store, store, d.EventSender(ctx))
	}

	return d.productService
}

func (d *di) InventoryHandler(ctx context.Context) InventoryHandler {
	if d.handler == nil {
		d.handler = thttp.NewInventoryHandler(
			d.PartService(ctx),
			d.ProductService(ctx),
		)
	}

	return d.handler
}

// Router builds the full route tree on first use.
func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		r := chi.NewRouter()
		r.Use(
			chimw.Recoverer,
			middleware.Logging,
		)

		r.Get("/health", health.Handler(d.Store(ctx)))
		d.InventoryHandler(ctx).Routes(r)

		d.router = r
	}

	return d.router
}
