package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidKind      = errors.New("invalid category kind")
	ErrDuplicateSlug    = errors.New("category with this title already exists")
	ErrForbidden        = errors.New("not allowed to perform this action on category")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}
