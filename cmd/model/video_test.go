package model

import "testing"

func TestVideoTagList(t *testing.T) {
	v := &Video{Tags: "go,gaming,web"}
	tags := v.TagList()
	if len(tags) != 3 || tags[0] != "go" || tags[2] != "web" {
		t.Errorf("got %v", tags)
	}

	empty := &Video{}
	if got := empty.TagList(); got != nil {
		t.Errorf("empty tags should yield nil, got %v", got)
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: "admin"}
	viewer := &User{Role: "user"}
	if !admin.IsAdmin() {
		t.Error("admin role not recognized")
	}
	if viewer.IsAdmin() {
		t.Error("user role misclassified as admin")
	}
}
