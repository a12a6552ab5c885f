package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goresult/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goresult/internal/pkg/pkguid"
	"github.com/shandysiswandi/goresult/internal/result/entity"
	"github.com/shandysiswandi/goresult/internal/result/store"
)

type Store interface {
	CreateResult(ctx context.Context, result entity.Result) error
	GetResult(ctx context.Context, id int64) (entity.Result, error)
	ListResults(ctx context.Context, page, pageSize int) ([]entity.Result, int, error)
	DeleteResult(ctx context.Context, id int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.ResultCreatedEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.NumberID
	EventID pkguid.StringID
	RootCtx context.Context
}

// Usecase is the interaction layer. It is the first layer that understands
// the semantic meaning of a fault, so classification happens here: bad input
// becomes BadRequest, a missing row becomes NotFound, and anything it does
// not recognize is wrapped untyped so the boundary logs it.
type Usecase struct {
	store   Store
	events  EventPublisher
	runner  Runner
	clock   Clock
	id      pkguid.NumberID
	eventID pkguid.StringID
	rootCtx context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:   dep.Store,
		events:  dep.Events,
		runner:  dep.Runner,
		clock:   clock,
		id:      dep.ID,
		eventID: dep.EventID,
		rootCtx: root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Get(ctx context.Context, rawID string) (GetResult, error) {
	id, err := parseID(rawID)
	if err != nil {
		return GetResult{}, err
	}

	result, err := u.store.GetResult(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return GetResult{}, pkgerror.NotFound.Wrapf(err, "error getting result with id %d", id)
		}
		return GetResult{}, pkgerror.Wrapf(err, "interactor getting result with id %d", id)
	}

	return GetResult{Result: result}, nil
}

func (u *Usecase) Create(ctx context.Context, input CreateInput) (CreateResult, error) {
	if u.store == nil || u.id == nil {
		return CreateResult{}, pkgerror.New("missing dependency")
	}

	if input.Title == "" {
		err := pkgerror.BadRequest.New("title is required")
		return CreateResult{}, pkgerror.AddContext(err, "title", "title must not be empty")
	}

	result := entity.Result{
		ID:        u.id.Generate(),
		Title:     input.Title,
		Value:     input.Value,
		CreatedAt: u.clock.Now().Unix(),
	}

	if err := u.store.CreateResult(ctx, result); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return CreateResult{}, pkgerror.Conflict.Wrapf(err, "error creating result with id %d", result.ID)
		}
		return CreateResult{}, pkgerror.Wrapf(err, "interactor creating result with id %d", result.ID)
	}

	u.publishCreated(result)

	return CreateResult{Result: result}, nil
}

func (u *Usecase) List(ctx context.Context, page, pageSize int) (ListResult, error) {
	if page < 1 || pageSize < 1 {
		err := pkgerror.BadRequest.New("invalid pagination")
		return ListResult{}, pkgerror.AddContext(err, "page", "page and page_size must be positive integers")
	}

	results, total, err := u.store.ListResults(ctx, page, pageSize)
	if err != nil {
		return ListResult{}, pkgerror.Wrap(err, "interactor listing results")
	}

	return ListResult{
		Results:  results,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (u *Usecase) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := u.store.DeleteResult(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return pkgerror.NotFound.Wrapf(err, "error deleting result with id %d", id)
		}
		return pkgerror.Wrapf(err, "interactor deleting result with id %d", id)
	}

	return nil
}

func (u *Usecase) publishCreated(result entity.Result) {
	if u.events == nil || u.runner == nil {
		return
	}

	event := entity.ResultCreatedEvent{Result: result}
	if u.eventID != nil {
		event.EventID = u.eventID.Generate()
	}

	// Publishing must not delay or fail the request; the consumer retries on
	// its own schedule.
	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish event", "event_id", event.EventID, "result_id", result.ID, "error", err)
		}
		return nil
	})
}
