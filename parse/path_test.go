package parse

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

const pathDocument = `{
	"contents": [
		{"title": {"runs": [{"text": "first"}]}},
		{"title": {"simpleText": "second"}, "count": 3}
	],
	"name": "root"
}`

func TestNode_Lookup(t *testing.T) {
	assert := assert_.New(t)
	root := jsonNode(t, pathDocument)

	assert.Equal("", root.Path())

	n, err := root.Lookup("/contents/0/title/runs/0")
	if assert.NoError(err) {
		assert.Equal("/contents/0/title/runs/0", n.Path())
		text, err := n.Text("/text")
		assert.NoError(err)
		assert.Equal("first", text)
	}

	same, err := root.Lookup("")
	assert.NoError(err)
	assert.Equal(root.Interface(), same.Interface())

	for path, target := range map[string]string{
		"/contents/2/title":         "/contents/2/title",
		"/contents/-1":              "/contents/-1",
		"/contents/x":               "/contents/x",
		"/contents/1/title/runs":    "/contents/1/title/runs",
		"/name/0":                   "/name/0",
		"/contents/1/count/deeper":  "/contents/1/count/deeper",
		"/missing/and/more/besides": "/missing/and/more/besides",
	} {
		_, err := root.Lookup(path)
		assert.ErrorIs(err, ErrMissingElement, path)
		assert.Equal(target, parseErrorTarget(t, err), path)
	}
}

func TestNode_RelativeErrorPath(t *testing.T) {
	assert := assert_.New(t)
	root := jsonNode(t, pathDocument)

	entries, err := root.Array("/contents")
	assert.NoError(err)
	assert.Len(entries, 2)
	assert.Equal("/contents/1", entries[1].Path())

	_, err = entries[1].Text("/title/runs/0/text")
	assert.ErrorIs(err, ErrMissingElement)
	assert.Equal("/contents/1/title/runs/0/text", parseErrorTarget(t, err))
}

func TestNode_Types(t *testing.T) {
	assert := assert_.New(t)
	root := jsonNode(t, pathDocument)

	text, err := root.Text("/name")
	assert.NoError(err)
	assert.Equal("root", text)

	_, err = root.Text("/contents/1/count")
	assert.ErrorIs(err, ErrMissingElement)
	assert.Equal("/contents/1/count", parseErrorTarget(t, err))

	_, err = root.Object("/contents")
	assert.ErrorIs(err, ErrMissingElement)

	_, err = root.Array("/name")
	assert.ErrorIs(err, ErrMissingElement)

	obj, err := root.Object("/contents/1/title")
	assert.NoError(err)
	child, ok := obj.Has("simpleText")
	assert.True(ok)
	assert.Equal("second", child.Interface())
	_, ok = obj.Has("runs")
	assert.False(ok)

	// Has only looks at object keys.
	contents, err := root.Lookup("/contents")
	assert.NoError(err)
	_, ok = contents.Has("0")
	assert.False(ok)

	var zero Node
	_, ok = zero.Has("anything")
	assert.False(ok)
	assert.Nil(zero.Interface())
	_, err = zero.Lookup("/anything")
	assert.ErrorIs(err, ErrMissingElement)
}
