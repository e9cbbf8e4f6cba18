package config

import "testing"

func TestNormalizeAdminEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Admin@Example.COM", "admin@example.com"},
		{"trims", "  admin@example.com  ", "admin@example.com"},
		{"display name form", "Site Admin <admin@example.com>", "admin@example.com"},
		{"empty stays unset", "", ""},
		{"unparseable treated as unset", "not an email", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeAdminEmail(tc.in); got != tc.want {
				t.Fatalf("normalizeAdminEmail(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
