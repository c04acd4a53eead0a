package queue

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Queue errors
	ErrBufferFull = errors.New(f("outbox full"))
)
