package errors

import "errors"

var (
	ErrInvalidArguments      = errors.New("invalid argument combination")
	ErrInvalidGlobalID       = errors.New("invalid global ID")
	ErrInvalidCursor         = errors.New("invalid pagination cursor")
	ErrNoDefaultChannel      = errors.New("no default channel is configured")
	ErrRankSortWithoutSearch = errors.New("sorting by RANK is available only when using a search filter")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrNotFound              = errors.New("not found")
)
