package result

import (
	"context"
	"fmt"
	"time"

	"github.com/shandysiswandi/goresult/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goresult/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goresult/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goresult/internal/pkg/pkguid"
	"github.com/shandysiswandi/goresult/internal/result/event"
	"github.com/shandysiswandi/goresult/internal/result/inbound"
	"github.com/shandysiswandi/goresult/internal/result/store"
	"github.com/shandysiswandi/goresult/internal/result/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.NumberID
	EventID   pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	storage, closeStore, err := newStorage(dep.Config)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus(512)
	consumer := event.NewNotificationConsumer(bus, event.LogNotifier{}, event.ConsumerConfig{
		Workers:     int(dep.Config.GetInt("modules.result.event.workers")),
		MaxRetries:  int(dep.Config.GetInt("modules.result.event.max_retries")),
		BaseBackoff: time.Duration(dep.Config.GetInt("modules.result.event.base_backoff_ms")) * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		snow, err := pkguid.NewSnowflake()
		if err != nil {
			return nil, err
		}
		dep.ID = snow
	}

	if dep.EventID == nil {
		dep.EventID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Events:  bus,
		Runner:  dep.Goroutine,
		Clock:   nil,
		ID:      dep.ID,
		EventID: dep.EventID,
		RootCtx: dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	closer := func(ctx context.Context) error {
		if err := consumer.Stop(ctx); err != nil {
			return err
		}
		if closeStore != nil {
			return closeStore()
		}
		return nil
	}

	return closer, nil
}

func newStorage(cfg pkgconfig.Config) (usecase.Store, func() error, error) {
	switch backend := cfg.GetString("modules.result.storage"); backend {
	case "sqlite":
		s, err := store.NewSQLite(cfg.GetString("modules.result.sqlite.dsn"))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "", "memory":
		return store.NewMemory(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
