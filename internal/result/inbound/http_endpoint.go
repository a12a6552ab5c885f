package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/goresult/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goresult/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goresult/internal/result/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) CreateResult(ctx context.Context, r *http.Request) (any, error) {
	var body CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		wrapped := pkgerror.BadRequest.Wrap(err, "handler decoding request body")
		return nil, pkgerror.AddContext(wrapped, "body", "request body must be valid JSON")
	}

	result, err := h.uc.Create(ctx, usecase.CreateInput{
		Title: body.Title,
		Value: body.Value,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{toHTTPResult(result.Result)}, nil
}

func (h *HTTPEndpoint) GetResult(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Get(ctx, pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return toHTTPResult(result.Result), nil
}

func (h *HTTPEndpoint) ListResults(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(result.Results))
	for _, res := range result.Results {
		results = append(results, toHTTPResult(res))
	}

	return ListResponse{
		Results:  results,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func (h *HTTPEndpoint) DeleteResult(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.Delete(ctx, pkgrouter.GetParam(ctx, "id")); err != nil {
		return nil, err
	}

	return nil, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			wrapped := pkgerror.BadRequest.New("handler parsing pagination")
			return 0, 0, pkgerror.AddContext(wrapped, "page", "page must be a positive integer")
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			wrapped := pkgerror.BadRequest.New("handler parsing pagination")
			return 0, 0, pkgerror.AddContext(wrapped, "page_size", "page_size must be a positive integer")
		}
		if value > 100 {
			value = 100
		}
		pageSize = value
	}

	return page, pageSize, nil
}
