package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		if e := ConvertErr(nil); e.ErrCode != SuccessCode {
			t.Errorf("got %d, want success", e.ErrCode)
		}
	})

	t.Run("ErrNoPassesThrough", func(t *testing.T) {
		e := ConvertErr(NotFoundErr.WithMessage("video not found"))
		if e.ErrCode != NotFoundErrCode || e.ErrMsg != "video not found" {
			t.Errorf("got %+v", e)
		}
	})

	t.Run("WrappedErrNoUnwraps", func(t *testing.T) {
		wrapped := errors.WithMessage(ForbiddenErr, "extra context")
		if e := ConvertErr(wrapped); e.ErrCode != ForbiddenErrCode {
			t.Errorf("got %d, want forbidden", e.ErrCode)
		}
	})

	t.Run("UnknownBecomesServiceErr", func(t *testing.T) {
		e := ConvertErr(errors.New("disk on fire"))
		if e.ErrCode != ServiceErrCode {
			t.Errorf("got %d, want service error", e.ErrCode)
		}
		if e.ErrMsg != "disk on fire" {
			t.Errorf("original message lost: %q", e.ErrMsg)
		}
	})
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	custom := ValidationErr.WithMessage("title is required")
	if ValidationErr.ErrMsg != "validation failed" {
		t.Errorf("base var mutated: %q", ValidationErr.ErrMsg)
	}
	if custom.ErrCode != ValidationErrCode {
		t.Errorf("code changed: %d", custom.ErrCode)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFoundErr) {
		t.Error("plain NotFoundErr not recognized")
	}
	if !IsNotFound(errors.WithMessage(NotFoundErr, "user")) {
		t.Error("wrapped NotFoundErr not recognized")
	}
	if IsNotFound(ForbiddenErr) {
		t.Error("ForbiddenErr misclassified")
	}
	if IsNotFound(nil) {
		t.Error("nil misclassified")
	}
}
