package match

import (
	"errors"

	"github.com/ezrec/chronal/translate"
)

var f = translate.From

var (
	// Graph construction errors, raised by panic.
	ErrVertexRange = errors.New(f("vertex out of range"))
)
