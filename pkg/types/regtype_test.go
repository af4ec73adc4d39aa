package types

import (
	"testing"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_NONE", regType: REG_NONE, expected: "REG_NONE"},
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_BINARY", regType: REG_BINARY, expected: "REG_BINARY"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_DWORD_BE", regType: REG_DWORD_BE, expected: "REG_DWORD_BE"},
		{name: "REG_LINK", regType: REG_LINK, expected: "REG_LINK"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		// Unknown types format as signed int32
		{name: "unknown small", regType: RegType(12), expected: "UNKNOWN_TYPE_12"},
		{name: "unknown large", regType: RegType(0xFFFFFFFF), expected: "UNKNOWN_TYPE_-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.regType.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseRegType(t *testing.T) {
	tests := []struct {
		in      string
		want    RegType
		wantErr bool
	}{
		{in: "REG_SZ", want: REG_SZ},
		{in: "sz", want: REG_SZ},
		{in: "string", want: REG_SZ},
		{in: "dword", want: REG_DWORD},
		{in: "REG_QWORD", want: REG_QWORD},
		{in: "expand_sz", want: REG_EXPAND_SZ},
		{in: "multi_sz", want: REG_MULTI_SZ},
		{in: " binary ", want: REG_BINARY},
		{in: "dword_be", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRegType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRegType(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRegType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRegType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
