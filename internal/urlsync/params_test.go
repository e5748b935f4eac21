package urlsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromRecord(t *testing.T) {
	p := ParseFromRecord(map[string]string{"q": "x", "due": "", "other": "y"})

	require.NotNil(t, p.Q)
	assert.Equal(t, "x", *p.Q)
	require.NotNil(t, p.Due)
	assert.Equal(t, "", *p.Due)
	assert.Nil(t, p.Tags)
	assert.Nil(t, p.View)
}

func TestToRecord_OmitsEmpty(t *testing.T) {
	empty := ""
	view := "trash"
	p := QueryParams{Q: &empty, View: &view}

	assert.Equal(t, map[string]string{"view": "trash"}, ToRecord(p))
}

func TestParseQuery(t *testing.T) {
	p, err := ParseQuery("status=active&status=completed")

	require.NoError(t, err)
	require.NotNil(t, p.Status)
	assert.Equal(t, "active", *p.Status)
}
