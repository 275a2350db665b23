package parse

import (
	"strconv"
	"strings"

	"github.com/bitly/go-simplejson"
)

// A Node is a position inside a parsed JSON document. It remembers the path that led to it, so that a failed
// lookup further down reports the whole path from the document root.
//
// Paths are slash-delimited, like JSON pointers: "/contents/0/title". A segment is an object key when the current
// value is an object, and a decimal index when it is an array.
type Node struct {
	json *simplejson.Json
	path string
}

// Path returns the path from the document root to this node; the root itself has the empty path.
func (n Node) Path() string {
	return n.path
}

// Interface returns the raw decoded value at this node.
func (n Node) Interface() any {
	if n.json == nil {
		return nil
	}
	return n.json.Interface()
}

// Lookup descends along path, stopping at the first segment that is missing or that would need to index into
// something that is neither an object nor an array. It never panics.
func (n Node) Lookup(path string) (Node, error) {
	segments := splitPath(path)
	cur := n
	if cur.json == nil {
		return Node{}, missingElement(joinPath(n.path, segments))
	}
	for _, segment := range segments {
		next, ok := cur.child(segment)
		if !ok {
			return Node{}, missingElement(joinPath(n.path, segments))
		}
		cur = next
	}
	return cur, nil
}

func (n Node) child(segment string) (Node, bool) {
	path := n.path + "/" + segment
	if _, err := n.json.Map(); err == nil {
		child, ok := n.json.CheckGet(segment)
		if !ok {
			return Node{}, false
		}
		return Node{json: child, path: path}, true
	}
	if arr, err := n.json.Array(); err == nil {
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= len(arr) {
			return Node{}, false
		}
		return Node{json: n.json.GetIndex(index), path: path}, true
	}
	return Node{}, false
}

// Has reports whether the object at this node has the key, returning the child if so.
func (n Node) Has(key string) (Node, bool) {
	if n.json == nil {
		return Node{}, false
	}
	if _, err := n.json.Map(); err != nil {
		return Node{}, false
	}
	return n.child(key)
}

// Text looks up path and requires a string there.
func (n Node) Text(path string) (string, error) {
	node, err := n.Lookup(path)
	if err != nil {
		return "", err
	}
	s, err := node.json.String()
	if err != nil {
		return "", missingElement(node.path)
	}
	return s, nil
}

// Object looks up path and requires an object there.
func (n Node) Object(path string) (Node, error) {
	node, err := n.Lookup(path)
	if err != nil {
		return Node{}, err
	}
	if _, err := node.json.Map(); err != nil {
		return Node{}, missingElement(node.path)
	}
	return node, nil
}

// Array looks up path and requires an array there, returning its elements.
func (n Node) Array(path string) ([]Node, error) {
	node, err := n.Lookup(path)
	if err != nil {
		return nil, err
	}
	arr, err := node.json.Array()
	if err != nil {
		return nil, missingElement(node.path)
	}
	elements := make([]Node, len(arr))
	for i := range arr {
		elements[i] = Node{json: node.json.GetIndex(i), path: node.path + "/" + strconv.Itoa(i)}
	}
	return elements, nil
}

func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func joinPath(base string, segments []string) string {
	if len(segments) == 0 {
		return base
	}
	return base + "/" + strings.Join(segments, "/")
}
