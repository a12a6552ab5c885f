package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/goresult/internal/result/entity"
)

type Memory struct {
	mu      sync.RWMutex
	results map[int64]entity.Result
}

func NewMemory() *Memory {
	return &Memory{
		results: make(map[int64]entity.Result),
	}
}

func (s *Memory) CreateResult(ctx context.Context, result entity.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[result.ID]; exists {
		return ErrDuplicate
	}

	s.results[result.ID] = result

	return nil
}

func (s *Memory) GetResult(ctx context.Context, id int64) (entity.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	if !ok {
		return entity.Result{}, ErrNoRows
	}

	return result, nil
}

func (s *Memory) ListResults(ctx context.Context, page, pageSize int) ([]entity.Result, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.results))
	for id := range s.results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	start := (page - 1) * pageSize
	end := start + pageSize
	items := make([]entity.Result, 0, pageSize)

	for i, id := range ids {
		if i >= start && i < end {
			items = append(items, s.results[id])
		}
	}

	return items, len(ids), nil
}

func (s *Memory) DeleteResult(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[id]; !ok {
		return ErrNoRows
	}

	delete(s.results, id)

	return nil
}
