package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		base string
		key  string
		want string
	}{
		{"https://cdn.example.com", "teams/a/logo.png", "https://cdn.example.com/teams/a/logo.png"},
		{"https://cdn.example.com/", "/teams/a/logo.png", "https://cdn.example.com/teams/a/logo.png"},
		{"https://cdn.example.com/assets", "teams/a/logo.png", "https://cdn.example.com/assets/teams/a/logo.png"},
		{"", "teams/a/logo.png", ""},
		{"https://cdn.example.com", "", ""},
	}

	for _, tt := range tests {
		if got := publicURL(tt.base, tt.key); got != tt.want {
			t.Fatalf("publicURL(%q, %q): expected %q, got %q", tt.base, tt.key, tt.want, got)
		}
	}
}

func TestNewCloudflareR2UploaderRequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc", BucketName: "logos"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "all fields are required") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDisabledUploader(t *testing.T) {
	u := NewDisabledUploader()
	if _, err := u.Upload(context.Background(), "k", "image/png", strings.NewReader("x")); !errors.Is(err, ErrUploaderDisabled) {
		t.Fatalf("expected ErrUploaderDisabled, got %v", err)
	}
	if err := u.Delete(context.Background(), "k"); !errors.Is(err, ErrUploaderDisabled) {
		t.Fatalf("expected ErrUploaderDisabled, got %v", err)
	}
	if u.GetPublicURL("k") != "" {
		t.Fatal("expected empty public URL")
	}
}
