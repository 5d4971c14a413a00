package procsnap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portkit/whoport/pkg/model"
)

func TestUsernamesUnknownUID(t *testing.T) {
	users := NewUsernames()

	assert.Equal(t, model.Unknown, users.Lookup(model.UIDNone))

	// A UID far outside any sane user database resolves to the sentinel
	// rather than an error.
	assert.Equal(t, model.Unknown, users.Lookup(999999999))
}

func TestUsernamesCachesLookups(t *testing.T) {
	users := NewUsernames()

	first := users.Lookup(0)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, users.Lookup(0))

	// A miss is cached too.
	assert.Equal(t, model.Unknown, users.Lookup(999999999))
	_, cached := users.cache[999999999]
	assert.True(t, cached)
}
