package errors_test

import (
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCode(t *testing.T) {
	base := dnderr.NotFound("class wizard not held").WithMeta("class", "wizard")
	wrapped := dnderr.Wrap(base, "level up")

	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, "wizard", dnderr.GetMeta(wrapped)["class"])
	assert.Equal(t, "level up: class wizard not held", wrapped.Error())
}

func TestWrapForeignError(t *testing.T) {
	wrapped := dnderr.Wrap(fmt.Errorf("dial tcp: refused"), "fetch class")
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))

	coded := dnderr.WrapWithCode(fmt.Errorf("dial tcp: refused"), dnderr.CodeUnavailable, "fetch class")
	assert.True(t, dnderr.IsUnavailable(coded))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestIsRejected(t *testing.T) {
	assert.True(t, dnderr.IsRejected(dnderr.AlreadyExists("held")))
	assert.True(t, dnderr.IsRejected(fmt.Errorf("outer: %w", dnderr.NotFound("missing"))))
	assert.True(t, dnderr.IsRejected(dnderr.Validation("misc items cannot be equipped")))
	assert.False(t, dnderr.IsRejected(dnderr.InvalidArgument("bad")))
	assert.False(t, dnderr.IsRejected(nil))
}

func TestValidationBuilder(t *testing.T) {
	assert.NoError(t, dnderr.NewValidationBuilder().Required("name", "Wizard").Build())

	err := dnderr.NewValidationBuilder().
		Required("name", " ").
		Range("hitDie", 3, 4, 12).
		Build()
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Equal(t, "validation failed: hitDie: must be between 4 and 12; name: is required", err.Error())

	fields, ok := dnderr.GetMeta(err)[dnderr.MetaValidationErrors].(map[string][]string)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}
