package domain_test

import (
	"strings"
	"testing"

	"github.com/iho/walletledger/internal/domain"
)

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{name: "valid", userID: "alice-01"},
		{name: "empty", userID: "", wantErr: true},
		{name: "whitespace only", userID: "   ", wantErr: true},
		{name: "too long", userID: strings.Repeat("a", domain.MaxUserIDLength+1), wantErr: true},
		{name: "max length", userID: strings.Repeat("a", domain.MaxUserIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateUserID(tt.userID)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateUserName(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		wantErr  bool
	}{
		{name: "valid", userName: "Alice"},
		{name: "empty", userName: "", wantErr: true},
		{name: "whitespace only", userName: "  ", wantErr: true},
		{name: "too long", userName: strings.Repeat("x", domain.MaxUserNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateUserName(tt.userName)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "valid", phone: "9876543210"},
		{name: "too short", phone: "123456789", wantErr: true},
		{name: "too long", phone: "12345678901", wantErr: true},
		{name: "letters", phone: "987654321a", wantErr: true},
		{name: "with dashes", phone: "987-654-32", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePhone(tt.phone)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
