package vcard

import (
	"errors"
	"testing"
)

func TestQRRoundTrip(t *testing.T) {
	r, ch := janeDoe()
	text := Encode(r, ch)
	png, err := ToQR(text, 1024)
	if err != nil {
		t.Fatalf("ToQR: %v", err)
	}
	got, err := FromQR(png)
	if err != nil {
		t.Fatalf("FromQR: %v", err)
	}
	if got != text {
		t.Fatalf("QR payload mismatch\n got %q\nwant %q", got, text)
	}
}

func TestQRErrors(t *testing.T) {
	if _, err := ToQR("", 0); !errors.Is(err, ErrEmptyVcard) {
		t.Errorf("ToQR empty: %v", err)
	}
	if _, err := ToQR("BEGIN:VCARD", MaxQRSize+1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ToQR oversize: %v", err)
	}
	if _, err := FromQR(nil); !errors.Is(err, ErrQRDecode) {
		t.Errorf("FromQR nil: %v", err)
	}
	if _, err := FromQR([]byte("not a png")); !errors.Is(err, ErrQRDecode) {
		t.Errorf("FromQR garbage: %v", err)
	}
}
