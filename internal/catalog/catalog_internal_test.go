package catalog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyFields(t *testing.T) {
	messages := Messages{}
	messages.Nav.Home = "Home"

	empty := emptyFields(reflect.ValueOf(messages), "")

	assert.NotContains(t, empty, "nav.home")
	assert.Contains(t, empty, "nav.menu")
	assert.Contains(t, empty, "reservation.validation.pastDate")
	assert.Contains(t, empty, "meta.contact.description")
}

func TestDiff(t *testing.T) {
	missing, extra := diff([]string{"a", "b", "c"}, []string{"a", "c", "d"})

	assert.Equal(t, []string{"b"}, missing)
	assert.Equal(t, []string{"d"}, extra)

	missing, extra = diff([]string{"a"}, []string{"a"})
	assert.Empty(t, missing)
	assert.Empty(t, extra)
}
