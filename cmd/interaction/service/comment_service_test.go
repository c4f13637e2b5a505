package service

import (
	"strings"
	"testing"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/constants"
)

func TestValidateCommentText(t *testing.T) {
	if err := validateCommentText(""); err == nil {
		t.Error("empty comment should fail")
	}
	if err := validateCommentText("  \n\t "); err == nil {
		t.Error("whitespace comment should fail")
	}
	if err := validateCommentText(strings.Repeat("a", constants.MaxCommentLen+1)); err == nil {
		t.Error("overlong comment should fail")
	}
	if err := validateCommentText(strings.Repeat("a", constants.MaxCommentLen)); err != nil {
		t.Errorf("comment at the limit should pass: %v", err)
	}
}

func TestCommentThreadShape(t *testing.T) {
	top := &model.Comment{CommentId: 1, ParentId: 0}
	reply := &model.Comment{CommentId: 2, ParentId: 1}

	if !top.IsTopLevel() {
		t.Error("parent_id 0 should be top level")
	}
	if reply.IsTopLevel() {
		t.Error("reply misclassified as top level")
	}
}
