// Package media builds deterministic storage paths for uploaded images:
// images/<kind>_<postfix>/<slug>/<slug>.<ext>. Which field names the file
// and which postfix the kind gets comes from a per-kind table; unregistered
// kinds fall into a default bucket.
package media

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrNotPathable = errors.New("value cannot be mapped to an upload path")
	ErrNoPathField = errors.New("entity does not expose the configured path field")
)

// Object is an entity images can be stored for
type Object interface {
	MediaKind() string
	// MediaValue returns the value of a named identity field, false when
	// the entity has no such field
	MediaValue(field string) (string, bool)
}

// Attached is an attachment record (e.g. a gallery image) that is stored
// under its owning entity rather than under itself
type Attached interface {
	MediaObject() (Object, error)
}

type rule struct {
	field   string
	postfix string
}

var (
	defaultRule = rule{field: "slug", postfix: "uploads"}

	rules = map[string]rule{
		"member":  {field: "slug", postfix: "members_images"},
		"artist":  {field: "slug", postfix: "artists_images"},
		"album":   {field: "slug", postfix: "albums_images"},
		"gallery": {field: "slug", postfix: "gallery_images"},
	}
)

// Register adds or replaces the path rule for an entity kind
func Register(kind, field, postfix string) {
	rules[kind] = rule{field: field, postfix: postfix}
}

// Path derives the storage path for a file uploaded against obj.
// An Artist with slug "pink-floyd" and filename "cover.jpg" maps to
// "images/artist_artists_images/pink-floyd/pink-floyd.jpg".
func Path(obj interface{}, filename string) (string, error) {
	if attached, ok := obj.(Attached); ok {
		owner, err := attached.MediaObject()
		if err != nil {
			return "", err
		}
		obj = owner
	}
	object, ok := obj.(Object)
	if !ok {
		return "", ErrNotPathable
	}
	kind := object.MediaKind()
	r, ok := rules[kind]
	if !ok {
		r = defaultRule
	}
	name, ok := object.MediaValue(r.field)
	if !ok || name == "" {
		return "", ErrNoPathField
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return "images/" + kind + "_" + r.postfix + "/" + name + "/" + name + "." + ext, nil
}
