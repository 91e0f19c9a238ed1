package landing

import (
	"context"
	"strings"
	"testing"
)

func TestMarketingContainsFullShell(t *testing.T) {
	var sb strings.Builder
	if err := Marketing().Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()

	if got := strings.Count(out, `class="nav-link"`); got != 5 {
		t.Errorf("navigation links = %d, want 5", got)
	}
	for _, want := range []string{
		`href="/auth/google"`, // login control
		`<video`,              // hero video background
		"How it works",
		`type="email"`,
		`type="submit"`,
		"<footer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marketing page missing %q", want)
		}
	}
	if got := strings.Count(out, `class="col-md-4 text-center step"`); got != 3 {
		t.Errorf("how-it-works steps = %d, want 3", got)
	}
	if got := strings.Count(out, `class="footer-link"`); got != 2 {
		t.Errorf("footer links = %d, want 2", got)
	}
}

func TestSignupFormHasNoSubmitTarget(t *testing.T) {
	var sb strings.Builder
	if err := Marketing().Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()

	start := strings.Index(out, "<form")
	if start < 0 {
		t.Fatal("no signup form rendered")
	}
	formTag := out[start:strings.Index(out[start:], ">")+start]
	if strings.Contains(formTag, "action=") {
		t.Fatalf("signup form has a submit target: %s", formTag)
	}
}

func TestLoadingShowsIndicator(t *testing.T) {
	var sb strings.Builder
	if err := Loading().Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "Loading") {
		t.Error("loading page has no indicator")
	}
}

func TestResolutionErrorShowsMessageVerbatim(t *testing.T) {
	var sb strings.Builder
	if err := ResolutionError("network unavailable").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "network unavailable") {
		t.Error("error page does not contain the message")
	}
	if strings.Contains(out, "How it works") {
		t.Error("error page leaks marketing content")
	}
}
