package memstore

import (
	"testing"

	"github.com/aalvaropc/forecounter/internal/domain"
)

func TestStore_Lifecycle(t *testing.T) {
	s := New()

	if _, err := s.Read(); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found on empty store, got: %v", err)
	}

	payload := []byte("hello")
	if err := s.Write(payload); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	payload[0] = 'j'

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("expected stored copy to be isolated, got=%q", got)
	}

	got[0] = 'y'
	again, _ := s.Read()
	if string(again) != "hello" {
		t.Fatalf("expected read copy to be isolated, got=%q", again)
	}

	if err := s.Delete(); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
	if _, err := s.Read(); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found after delete, got: %v", err)
	}
}

func TestStore_EmptyPayloadIsPresent(t *testing.T) {
	s := New()
	if err := s.Write(nil); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("expected empty payload to be present, got: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got=%q", got)
	}
}
