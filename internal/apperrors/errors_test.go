package apperrors

import (
	"errors"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("open /etc/passwd: permission denied")
	err := New(KindPersistence, "settings unavailable", sentinel)
	if got := PublicMessage(err); got != "settings unavailable" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "settings unavailable")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("name too long"), want: KindValidation},
		{name: "unknown_section", err: UnknownSection("Salmi"), want: KindUnknownSection},
		{name: "persistence", err: Persistence(errors.New("disk full")), want: KindPersistence},
		{name: "playback", err: Playback(errors.New("no audio device")), want: KindPlayback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := KindOf(tc.err)
			if !ok || kind != tc.want {
				t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, tc.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(Validation("too long")) {
		t.Fatalf("expected validation error to be recognized")
	}
	if IsValidation(errors.New("plain")) {
		t.Fatalf("plain error misclassified as validation")
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}

func TestDefaultMessages(t *testing.T) {
	err := New(KindUnknownSection, "", nil)
	if got := PublicMessage(err); got != "Unknown content section." {
		t.Fatalf("PublicMessage() = %q, want default unknown-section text", got)
	}
}
