package home

import (
	"context"
	"strings"
	"testing"

	"github.com/markbates/goth"
)

func TestHomeGreetsUserByName(t *testing.T) {
	var sb strings.Builder
	if err := Home(&goth.User{Name: "Ada"}).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "Welcome back, Ada") {
		t.Error("home page does not greet the user")
	}
}

func TestHomeFallsBackWithoutUser(t *testing.T) {
	var sb strings.Builder
	if err := Home(nil).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "Welcome back, there") {
		t.Error("home page has no fallback greeting")
	}
}
