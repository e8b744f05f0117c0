package lang

import (
	"reflect"
	"testing"
)

func TestFor(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "en"},
		{"en", "en"},
		{"id", "id"},
		{"ID", "id"},
		{"id-ID", "id"},
		{"en_US", "en"},
		{"fr", "en"},
	}
	for _, tt := range tests {
		if got := For(tt.locale).Locale; got != tt.want {
			t.Errorf("For(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestTablesComplete(t *testing.T) {
	for _, locale := range Locales() {
		v := reflect.ValueOf(*For(locale))
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("%s: %s is empty", locale, v.Type().Field(i).Name)
			}
		}
	}
}
