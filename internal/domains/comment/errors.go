package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidKind     = errors.New("invalid comment kind")
	ErrForbidden       = errors.New("not allowed to perform this action on comment")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound)
}
