package auth

import (
	"testing"
	"time"
)

func TestCodecIssueVerify(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour)

	validToken, err := codec.Issue("me@x.com")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	// token signed with a different secret
	otherCodec := NewCodec([]byte("other-secret"), time.Hour)
	foreignToken, err := otherCodec.Issue("me@x.com")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	// token already past its expiry
	expiredCodec := NewCodec([]byte("test-secret"), -time.Hour)
	expiredToken, err := expiredCodec.Issue("me@x.com")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	tests := []struct {
		name      string
		token     string
		wantEmail string
		wantErr   error
	}{
		{name: "empty token", token: "", wantErr: ErrInvalidToken},
		{name: "malformed token", token: "not.a.jwt", wantErr: ErrInvalidToken},
		{name: "tampered token", token: validToken + "x", wantErr: ErrInvalidToken},
		{name: "wrong secret", token: foreignToken, wantErr: ErrInvalidToken},
		{name: "expired token", token: expiredToken, wantErr: ErrInvalidToken},
		{name: "valid token", token: validToken, wantEmail: "me@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := codec.Verify(tt.token)
			if err != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if email != tt.wantEmail {
				t.Errorf("Verify() email = %q, want %q", email, tt.wantEmail)
			}
		})
	}
}

func TestCodecEmptyEmailRejected(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour)

	token, err := codec.Issue("")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if _, err := codec.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}
