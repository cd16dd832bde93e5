//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"creator-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkKeepsBothIdentities(t *testing.T) {
	cause := errs.Wrap(errs.ErrInsufficientFunds, "allowance too low")
	err := errs.Mark(errs.Wrapf(cause, "%s leg", "collect"), errs.ErrPaymentFailed)

	assert.True(t, errs.Is(err, errs.ErrPaymentFailed))
	assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))
	assert.False(t, errs.Is(err, errs.ErrTransferFailed))
	assert.Contains(t, err.Error(), "allowance too low")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "x"))
	assert.Nil(t, errs.Wrapf(nil, "x %d", 1))
	assert.Equal(t, errs.ErrNoOp, errs.Mark(nil, errs.ErrNoOp))
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errors.New("root"), "context")
	lines := errs.ExtractStackLines(err, 2)
	assert.Len(t, lines, 2)
}
