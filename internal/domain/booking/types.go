package booking

import (
	"strconv"

	"creator-booking/internal/pkg/errs"
)

// ID identifies a booking and its receipt. IDs are allocated from 1 upward;
// None (0) is never assigned and means "no booking".
type ID uint64

const None ID = 0

func (id ID) IsNone() bool {
	return id == None
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return None, errs.ErrNotFound
	}
	return ID(v), nil
}
