package tag

import "errors"

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrDuplicateSlug = errors.New("tag with this title already exists")
	ErrForbidden     = errors.New("not allowed to perform this action on tag")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrTagNotFound)
}
