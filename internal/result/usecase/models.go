package usecase

import "github.com/shandysiswandi/goresult/internal/result/entity"

type CreateInput struct {
	Title string
	Value string
}

type CreateResult struct {
	Result entity.Result
}

type GetResult struct {
	Result entity.Result
}

type ListResult struct {
	Results  []entity.Result
	Page     int
	PageSize int
	Total    int
}
