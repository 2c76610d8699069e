package delaunay

import (
	"errors"

	"github.com/akmonengine/delaunay/insert2"
	"github.com/akmonengine/delaunay/insert3"
)

func isDuplicate2(err error) bool {
	return errors.Is(err, insert2.ErrDuplicatePoint)
}

func isDuplicate3(err error) bool {
	return errors.Is(err, insert3.ErrDuplicatePoint)
}
