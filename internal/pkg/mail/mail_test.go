package mail

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigComplete(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"both set", Config{User: "a@gmail.com", AppPassword: "pw"}, true},
		{"missing password", Config{User: "a@gmail.com"}, false},
		{"missing user", Config{AppPassword: "pw"}, false},
		{"whitespace only", Config{User: "  ", AppPassword: "\t"}, false},
		{"empty", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Complete(); got != tt.want {
				t.Fatalf("Complete() = %v", got)
			}
		})
	}
}

func TestSendWithoutConfig(t *testing.T) {
	s := New(Config{})
	err := s.Send(Message{To: []string{"x@example.com"}, Subject: "s", HTML: "<p>hi</p>"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestRenderResetPassword(t *testing.T) {
	html, err := RenderResetPassword(ResetPasswordData{
		Name:     "Jane",
		ResetURL: "https://site.example/admin/reset-password?token=abc123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Jane") {
		t.Error("rendered mail missing recipient name")
	}
	if !strings.Contains(html, "token=abc123") {
		t.Error("rendered mail missing reset link")
	}
	if !strings.Contains(html, "valid for one hour") {
		t.Error("rendered mail missing expiry notice")
	}
}
