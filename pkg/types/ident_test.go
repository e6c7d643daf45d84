package types

import (
	"errors"
	"testing"
)

func TestParseIdent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ident
		wantErr bool
	}{
		{
			name:  "full ident",
			input: "core/openssl/1.1.1/20200101000000",
			want:  Ident{Origin: "core", Name: "openssl", Version: "1.1.1", Release: "20200101000000"},
		},
		{
			name:  "non-numeric version",
			input: "core/gcc/9.1-beta/123",
			want:  Ident{Origin: "core", Name: "gcc", Version: "9.1-beta", Release: "123"},
		},
		{
			name:    "short name",
			input:   "core/openssl",
			wantErr: true,
		},
		{
			name:    "three parts",
			input:   "core/openssl/1.1.1",
			wantErr: true,
		},
		{
			name:    "five parts",
			input:   "core/openssl/1.1.1/2020/extra",
			wantErr: true,
		},
		{
			name:    "empty component",
			input:   "core//1.1.1/2020",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdent(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIdent(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidIdent) {
					t.Errorf("ParseIdent(%q) error = %v, want ErrInvalidIdent", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdent(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseIdent(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentString(t *testing.T) {
	ident := Ident{Origin: "core", Name: "glibc", Version: "2.29", Release: "20200305172459"}
	if got := ident.String(); got != "core/glibc/2.29/20200305172459" {
		t.Errorf("String() = %q", got)
	}
	if got := ident.ShortName(); got != "core/glibc" {
		t.Errorf("ShortName() = %q", got)
	}
}

func TestParseShortName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"core/openssl", false},
		{"core/openssl/1.1.1/2020", true},
		{"openssl", true},
		{"core/", true},
		{"/openssl", true},
		{"", true},
	}

	for _, tt := range tests {
		got, err := ParseShortName(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseShortName(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseShortName(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.input {
			t.Errorf("ParseShortName(%q) = %q", tt.input, got)
		}
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "core/openssl/1.1.1/2020", want: "core/openssl"},
		{input: "core/openssl", want: "core/openssl"},
		{input: "core/openssl/1.1.1", want: "core/openssl"},
		{input: "openssl", wantErr: true},
		{input: "/openssl/1.1.1/2020", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ShortName(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ShortName(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ShortName(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestShapePredicates(t *testing.T) {
	if !IsFullIdent("core/openssl/1.1.1/2020") {
		t.Error("IsFullIdent rejected a full ident")
	}
	if IsFullIdent("core/openssl") {
		t.Error("IsFullIdent accepted a short name")
	}
	if !IsShortName("core/openssl") {
		t.Error("IsShortName rejected a short name")
	}
	if IsShortName("core/openssl/1.1.1/2020") {
		t.Error("IsShortName accepted a full ident")
	}
	if IsShortName("openssl") {
		t.Error("IsShortName accepted a bare name")
	}
}
