package inbound

import (
	"context"

	"github.com/shandysiswandi/goresult/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goresult/internal/result/usecase"
)

type uc interface {
	Create(ctx context.Context, input usecase.CreateInput) (usecase.CreateResult, error)
	Get(ctx context.Context, rawID string) (usecase.GetResult, error)
	List(ctx context.Context, page, pageSize int) (usecase.ListResult, error)
	Delete(ctx context.Context, rawID string) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/results", end.CreateResult)
	r.GET("/results", end.ListResults)
	r.GET("/results/:id", end.GetResult)
	r.DELETE("/results/:id", end.DeleteResult)
}
