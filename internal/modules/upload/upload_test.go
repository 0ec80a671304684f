package upload

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/folio-space/core/internal/config"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantCT   string
		wantErr  string
	}{
		{"jpeg", "photo.jpg", 1024, "image/jpeg", ""},
		{"jpeg long ext", "photo.JPEG", 1024, "image/jpeg", ""},
		{"png", "shot.png", maxImageSize, "image/png", ""},
		{"webp", "hero.webp", 1024, "image/webp", ""},
		{"avif", "hero.avif", 1024, "image/avif", ""},
		{"too large", "big.png", maxImageSize + 1, "", "size limit"},
		{"gif rejected", "anim.gif", 1024, "", "unsupported type"},
		{"no extension", "mystery", 1024, "", "unsupported type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			ct, err := ValidateImage(fh)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ct != tt.wantCT {
					t.Fatalf("content type = %q, want %q", ct, tt.wantCT)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewUploaderUnconfigured(t *testing.T) {
	if u := NewUploader(config.S3Options{}); u != nil {
		t.Fatal("uploader built without credentials")
	}
	if u := NewUploader(config.S3Options{Bucket: "b"}); u != nil {
		t.Fatal("uploader built without access keys")
	}
}

func TestPublicURL(t *testing.T) {
	base := config.S3Options{
		Bucket:          "media",
		Region:          "eu-west-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}

	t.Run("amazon hosted", func(t *testing.T) {
		u := NewUploader(base)
		got := u.PublicURL("portfolio/a.png")
		want := "https://media.s3.eu-west-1.amazonaws.com/portfolio/a.png"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("custom domain wins", func(t *testing.T) {
		cfg := base
		cfg.CustomDomain = "cdn.example.com/"
		u := NewUploader(cfg)
		if got := u.PublicURL("portfolio/a.png"); got != "https://cdn.example.com/portfolio/a.png" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("compatible endpoint", func(t *testing.T) {
		cfg := base
		cfg.Endpoint = "https://minio.local:9000"
		u := NewUploader(cfg)
		if got := u.PublicURL("portfolio/a.png"); got != "https://minio.local:9000/media/portfolio/a.png" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestKeyPrefix(t *testing.T) {
	cfg := config.S3Options{Bucket: "b", AccessKeyID: "k", SecretAccessKey: "s"}
	if got := NewUploader(cfg).Key("x.png"); got != "portfolio/x.png" {
		t.Fatalf("got %q", got)
	}

	cfg.KeyPrefix = "assets"
	if got := NewUploader(cfg).Key("x.png"); got != "assets/x.png" {
		t.Fatalf("got %q", got)
	}
}
