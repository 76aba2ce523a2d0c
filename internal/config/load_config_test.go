package config

import "testing"

func TestLoadPackageInfo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PackageInfo
	}{
		{
			name: "valid metadata",
			raw:  "name: spec-kit\nversion: 2.3.4\ndescription: scaffolding\n",
			want: PackageInfo{Name: "spec-kit", Version: "2.3.4", Description: "scaffolding"},
		},
		{
			name: "malformed yaml falls back",
			raw:  "name: [unterminated",
			want: DefaultPackageInfo,
		},
		{
			name: "missing version falls back",
			raw:  "name: spec-kit\n",
			want: DefaultPackageInfo,
		},
		{
			name: "empty input falls back",
			raw:  "",
			want: DefaultPackageInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoadPackageInfo([]byte(tt.raw)); got != tt.want {
				t.Errorf("LoadPackageInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePackageInfoReportsErrors(t *testing.T) {
	if _, err := ParsePackageInfo([]byte("version: 1.0.0\n")); err == nil {
		t.Error("expected error for metadata without a name")
	}
}
