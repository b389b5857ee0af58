package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotTrashed   = errors.New("post must be trashed before destroying")
	ErrForbidden    = errors.New("not allowed to perform this action on post")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
