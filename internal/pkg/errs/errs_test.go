//go:build unit

package errs_test

import (
	"testing"

	"stayhub/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("transition not permitted")

	t.Run("stdlib errors.Is matches the sentinel", func(t *testing.T) {
		cause := errs.New("booking is in a terminal status")

		marked := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, marked, sentinel)
		assert.ErrorIs(t, marked, cause)
	})

	t.Run("cockroach errors.Is matches the sentinel", func(t *testing.T) {
		marked := errs.Mark(errs.New("cause"), sentinel)

		assert.True(t, cr.Is(marked, sentinel))
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})
}
