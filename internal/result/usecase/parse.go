package usecase

import (
	"strconv"

	"github.com/shandysiswandi/goresult/internal/pkg/pkgerror"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		wrapped := pkgerror.BadRequest.Wrap(err, "interactor converting id to int")
		return 0, pkgerror.AddContext(wrapped, "id", "wrong id format, should be an integer")
	}

	return id, nil
}
