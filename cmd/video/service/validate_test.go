package service

import (
	"strings"
	"testing"

	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
)

func TestNormalizeTags(t *testing.T) {
	t.Run("TrimLowercaseDedupe", func(t *testing.T) {
		tags, err := NormalizeTags(" Go , gaming, go ,GAMING, web ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"go", "gaming", "web"}
		if len(tags) != len(want) {
			t.Fatalf("got %v, want %v", tags, want)
		}
		for i := range want {
			if tags[i] != want[i] {
				t.Errorf("tag[%d] = %q, want %q", i, tags[i], want[i])
			}
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		tags, err := NormalizeTags("   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 0 {
			t.Errorf("got %v, want empty", tags)
		}
	})

	t.Run("EmptySegmentsDropped", func(t *testing.T) {
		tags, err := NormalizeTags("a,, ,b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
			t.Errorf("got %v, want [a b]", tags)
		}
	})

	t.Run("OverCapRejected", func(t *testing.T) {
		raw := "t1,t2,t3,t4,t5,t6,t7,t8,t9,t10,t11"
		if _, err := NormalizeTags(raw); err == nil {
			t.Fatal("expected validation error for 11 tags")
		}
	})

	t.Run("DuplicatesDoNotCountTowardCap", func(t *testing.T) {
		raw := strings.Repeat("same,", 20) + "other"
		tags, err := NormalizeTags(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 2 {
			t.Errorf("got %v, want 2 distinct tags", tags)
		}
	})
}

func TestValidateTitle(t *testing.T) {
	if err := validateTitle(""); err == nil {
		t.Error("empty title should fail")
	}
	if err := validateTitle("   "); err == nil {
		t.Error("whitespace title should fail")
	}
	if err := validateTitle(strings.Repeat("x", constants.MaxTitleLen+1)); err == nil {
		t.Error("overlong title should fail")
	}
	if err := validateTitle(strings.Repeat("x", constants.MaxTitleLen)); err != nil {
		t.Errorf("title at the limit should pass: %v", err)
	}
}

func TestValidateDescription(t *testing.T) {
	if err := validateDescription(""); err != nil {
		t.Errorf("empty description should pass: %v", err)
	}
	if err := validateDescription(strings.Repeat("x", constants.MaxDescriptionLen+1)); err == nil {
		t.Error("overlong description should fail")
	}
}

func TestValidateCategory(t *testing.T) {
	t.Run("EmptyDefaults", func(t *testing.T) {
		got, err := validateCategory("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != constants.DefaultCategory {
			t.Errorf("got %q, want %q", got, constants.DefaultCategory)
		}
	})

	t.Run("KnownCategoriesPass", func(t *testing.T) {
		for _, cat := range constants.VideoCategories {
			got, err := validateCategory(cat)
			if err != nil {
				t.Errorf("category %q rejected: %v", cat, err)
			}
			if got != cat {
				t.Errorf("category %q changed to %q", cat, got)
			}
		}
	})

	t.Run("UnknownRejected", func(t *testing.T) {
		_, err := validateCategory("cooking")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if e := errno.ConvertErr(err); e.ErrCode != errno.ValidationErrCode {
			t.Errorf("want validation error code, got %v", err)
		}
	})
}
