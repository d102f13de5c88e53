package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("registered code fills template", func(t *testing.T) {
		err := New(CodeParseFailed)
		if err.Code != CodeParseFailed {
			t.Errorf("Code = %v, want %v", err.Code, CodeParseFailed)
		}
		if err.Category != CategoryParse {
			t.Errorf("Category = %v, want %v", err.Category, CategoryParse)
		}
		if err.Message == "" || err.Detail == "" {
			t.Error("template message and detail must be filled")
		}
	})

	t.Run("unknown code still carries the code", func(t *testing.T) {
		err := New("E999")
		if err.Code != "E999" {
			t.Errorf("Code = %v, want E999", err.Code)
		}
		if err.Message != "Unknown error" {
			t.Errorf("Message = %q", err.Message)
		}
	})

	t.Run("error string includes code", func(t *testing.T) {
		err := New(CodeInvalidArgument)
		want := fmt.Sprintf("%s: %s", CodeInvalidArgument, err.Message)
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestWrapping(t *testing.T) {
	cause := stderrors.New("disk full")

	t.Run("unwrap reaches the cause", func(t *testing.T) {
		err := New(CodeConfigInvalid).Wrap(cause)
		if !stderrors.Is(err, cause) {
			t.Error("errors.Is must find the wrapped cause")
		}
	})

	t.Run("as recovers the structured error", func(t *testing.T) {
		var wrapped error = FromError(cause, CodeConfigInvalid)
		var domErr *Error
		if !stderrors.As(wrapped, &domErr) {
			t.Fatal("errors.As must match *Error")
		}
		if domErr.Code != CodeConfigInvalid {
			t.Errorf("Code = %v, want %v", domErr.Code, CodeConfigInvalid)
		}
	})

	t.Run("from nil error is nil", func(t *testing.T) {
		if FromError(nil, CodeConfigInvalid) != nil {
			t.Error("FromError(nil) must be nil")
		}
	})
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("target must not be nil")
	if err.Code != CodeInvalidArgument {
		t.Errorf("Code = %v, want %v", err.Code, CodeInvalidArgument)
	}
	if err.Detail != "target must not be nil" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeConfigNotFound).
		WithSuggestion("run domkit init").
		Wrap(stderrors.New("stat failed"))

	out := err.Format()
	for _, want := range []string{
		"ERROR " + CodeConfigNotFound,
		"category: config",
		"cause: stat failed",
		"hint: run domkit init",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in %q", want, out)
		}
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "bad flag %q", "--x")
	if err.Code != "" {
		t.Errorf("Code = %v, want empty", err.Code)
	}
	if err.Message != `bad flag "--x"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Error() != err.Message {
		t.Errorf("Error() = %q, want bare message", err.Error())
	}
}
