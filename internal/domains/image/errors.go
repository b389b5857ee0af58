package image

import "errors"

var (
	ErrImageNotFound = errors.New("image not found")
	ErrNotTrashed    = errors.New("image must be trashed before destroying")
	ErrInvalidUpload = errors.New("invalid image upload")
	ErrForbidden     = errors.New("not allowed to perform this action on image")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrImageNotFound)
}
