package domain

import (
	"reflect"
	"testing"
)

func TestParseAddressList(t *testing.T) {
	text := "0x1111111111111111111111111111111111111111,\n" +
		"0x2222222222222222222222222222222222222222 0x3333333333333333333333333333333333333333\n" +
		"\t0xAbCdEf0123456789aBcDeF0123456789abcdef01\n"

	got, err := ParseAddressList(text)
	if err != nil {
		t.Fatalf("ParseAddressList failed: %v", err)
	}

	want := []string{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333",
		"0xabcdef0123456789abcdef0123456789abcdef01",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseAddressList = %v, want %v", got, want)
	}
}

func TestParseAddressList_RejectsMalformed(t *testing.T) {
	inputs := []string{
		"0x123",      // too short
		"1111111111111111111111111111111111111111ab", // no prefix
		"0xzz11111111111111111111111111111111111111", // bad hex
	}
	for _, in := range inputs {
		if _, err := ParseAddressList(in); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}
}

func TestIsValidAddress(t *testing.T) {
	if !IsValidAddress("0x1111111111111111111111111111111111111111") {
		t.Error("Expected valid address to pass")
	}
	if IsValidAddress("0x11111111111111111111111111111111111111") {
		t.Error("Expected short address to fail")
	}
}
