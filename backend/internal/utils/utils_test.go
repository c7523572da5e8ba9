package utils

import (
	"net/http"
	"strings"
	"testing"

	"github.com/itchan-dev/bulletin/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewId(t *testing.T) {
	id := NewId()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewId())
}

func TestBoardValidator(t *testing.T) {
	v := &BoardValidator{}

	assert.NoError(t, v.Topic("golang"))
	assert.NoError(t, v.Topic(strings.Repeat("ж", maxTopicLen)))
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(v.Topic("")))
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(v.Topic("   ")))
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(v.Topic(strings.Repeat("a", maxTopicLen+1))))

	assert.NoError(t, v.Context(""))
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(v.Context(strings.Repeat("a", maxContextLen+1))))
}

func TestThreadValidator(t *testing.T) {
	v := &ThreadValidator{}

	assert.NoError(t, v.Text("hello"))
	assert.Error(t, v.Text(""))
	assert.Error(t, v.Text(strings.Repeat("a", maxTextLen+1)))
}

func TestPostValidator(t *testing.T) {
	v := &PostValidator{}

	assert.NoError(t, v.Title("title"))
	assert.NoError(t, v.Content("content"))
	assert.Error(t, v.Title(""))
	assert.Error(t, v.Title(strings.Repeat("a", maxTitleLen+1)))
	assert.Error(t, v.Content(" "))
	assert.Error(t, v.Content(strings.Repeat("a", maxContentLen+1)))
}
