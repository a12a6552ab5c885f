package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goresult/internal/result/entity"
)

type CreateRequest struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type Result struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Value     string `json:"value"`
	CreatedAt int64  `json:"created_at"`
}

func toHTTPResult(result entity.Result) Result {
	return Result{
		ID:        result.ID,
		Title:     result.Title,
		Value:     result.Value,
		CreatedAt: result.CreatedAt,
	}
}

type CreateResponse struct {
	Result
}

func (CreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateResponse) Message() string {
	return "result created"
}

type ListResponse struct {
	Results  []Result `json:"results"`
	page     int
	pageSize int
	total    int
}

func (r ListResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}
