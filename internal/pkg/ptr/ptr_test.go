//go:build unit

package ptr_test

import (
	"testing"

	"rentx-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	p := ptr.Of(3)
	assert.Equal(t, 3, *p)

	*p = 4
	assert.Equal(t, 4, *ptr.Of(*p))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "set", ptr.Deref(ptr.Of("set"), "fallback"))
	assert.Equal(t, "fallback", ptr.Deref(nil, "fallback"))
	assert.False(t, ptr.Deref((*bool)(nil), false))
}
