package media

import (
	"errors"
	"testing"
)

type fakeEntity struct {
	kind string
	slug string
}

func (f *fakeEntity) MediaKind() string {
	return f.kind
}

func (f *fakeEntity) MediaValue(field string) (string, bool) {
	if field == "slug" && f.slug != "" {
		return f.slug, true
	}
	return "", false
}

type fakeAttachment struct {
	owner Object
	err   error
}

func (f *fakeAttachment) MediaObject() (Object, error) {
	return f.owner, f.err
}

func TestPath(t *testing.T) {
	tests := []struct {
		name     string
		obj      interface{}
		filename string
		want     string
		wantErr  error
	}{
		{
			name:     "artist",
			obj:      &fakeEntity{kind: "artist", slug: "pink-floyd"},
			filename: "cover.jpg",
			want:     "images/artist_artists_images/pink-floyd/pink-floyd.jpg",
		},
		{
			name:     "member",
			obj:      &fakeEntity{kind: "member", slug: "david-gilmour"},
			filename: "portrait.PNG",
			want:     "images/member_members_images/david-gilmour/david-gilmour.png",
		},
		{
			name:     "album",
			obj:      &fakeEntity{kind: "album", slug: "the-dark-side-of-the-moon"},
			filename: "front.jpeg",
			want:     "images/album_albums_images/the-dark-side-of-the-moon/the-dark-side-of-the-moon.jpeg",
		},
		{
			name:     "unregistered kind falls back to the default bucket",
			obj:      &fakeEntity{kind: "poster", slug: "tour-1977"},
			filename: "scan.png",
			want:     "images/poster_uploads/tour-1977/tour-1977.png",
		},
		{
			name:     "attachment resolves its owner first",
			obj:      &fakeAttachment{owner: &fakeEntity{kind: "artist", slug: "pink-floyd"}},
			filename: "press.jpg",
			want:     "images/artist_artists_images/pink-floyd/pink-floyd.jpg",
		},
		{
			name:    "missing identity field is a configuration error",
			obj:     &fakeEntity{kind: "artist"},
			wantErr: ErrNoPathField,
		},
		{
			name:    "non-entity value",
			obj:     42,
			wantErr: ErrNotPathable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Path(tt.obj, tt.filename)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Path() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	Register("poster", "slug", "posters_images")
	defer delete(rules, "poster")

	got, err := Path(&fakeEntity{kind: "poster", slug: "tour-1977"}, "scan.png")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	want := "images/poster_posters_images/tour-1977/tour-1977.png"
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
