package database

import (
	"context"
	"strings"
	"testing"
)

func TestConnect_Validation(t *testing.T) {
	_, err := Connect(context.Background(), "")
	if err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	if !strings.Contains(err.Error(), "DSN") {
		t.Fatalf("expected DSN error, got %v", err)
	}

	if _, err := Connect(context.Background(), "invalid-dsn"); err == nil {
		t.Fatalf("expected error for invalid dsn")
	}
}
