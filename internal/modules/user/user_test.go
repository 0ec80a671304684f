package user

import (
	"strings"
	"testing"
)

func TestCreateAccountValidation(t *testing.T) {
	valid := CreateAccountDTO{Name: "Admin", Email: "admin@example.com", Password: "secret1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid dto rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*CreateAccountDTO)
		wantErr string
	}{
		{"missing name", func(d *CreateAccountDTO) { d.Name = "" }, "Name is required"},
		{"missing email", func(d *CreateAccountDTO) { d.Email = "" }, "Email is required"},
		{"bad email", func(d *CreateAccountDTO) { d.Email = "nope" }, "Invalid email"},
		{"missing password", func(d *CreateAccountDTO) { d.Password = "" }, "Password is required"},
		{"short password", func(d *CreateAccountDTO) { d.Password = "12345" }, "at least 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := valid
			tt.mutate(&dto)
			err := dto.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	a := hashToken("my-reset-token")
	b := hashToken("my-reset-token")
	c := hashToken("other-token")

	if a != b {
		t.Fatal("hash not deterministic")
	}
	if a == c {
		t.Fatal("distinct tokens collide")
	}
	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(a))
	}
	if a == "my-reset-token" {
		t.Fatal("token stored in the clear")
	}
}
