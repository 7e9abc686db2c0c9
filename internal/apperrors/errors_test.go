package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("/home/user/secret/input.ass: permission denied")
	err := New(KindIO, "cannot open input", sentinel)
	if got := PublicMessage(err); got != "cannot open input" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "cannot open input")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestKindOf(t *testing.T) {
	err := MalformedInput(errors.New("dialogue 3 has 4 fields"))
	kind, ok := KindOf(err)
	if !ok || kind != KindMalformedInput {
		t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindMalformedInput)
	}
	if !IsMalformedInput(err) {
		t.Fatalf("expected malformed input error")
	}
	if IsIO(err) {
		t.Fatalf("malformed input error reported as io")
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("convert: %w", IO(errors.New("disk full")))
	if !IsIO(err) {
		t.Fatalf("expected io kind through wrapping")
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}

func TestPublicMessage_DefaultMessage(t *testing.T) {
	err := Config(errors.New("yaml: line 2"))
	if got := PublicMessage(err); got != "Configuration is invalid." {
		t.Fatalf("PublicMessage() = %q", got)
	}
}

func TestDetail(t *testing.T) {
	err := New(KindUsage, "bad path:", errors.New("same file"))
	if got := Detail(err); got != "bad path: same file" {
		t.Fatalf("Detail() = %q", got)
	}
	if got := Detail(errors.New("plain")); got != "plain" {
		t.Fatalf("Detail() = %q", got)
	}
}
