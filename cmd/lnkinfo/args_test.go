package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{name: "file only", args: []string{"app.lnk"}, want: []string{"app.lnk"}},
		{name: "console", args: []string{"/C", "app.lnk"}, want: []string{"--console", "app.lnk"}},
		{name: "lower case", args: []string{"/c", "/pf", "app.lnk"}, want: []string{"--console", "--type=PF", "app.lnk"}},
		{name: "backslash prefix", args: []string{`\VL`, "app.lnk"}, want: []string{"--type=VL", "app.lnk"}},
		{name: "double dash field", args: []string{"--I", "app.lnk"}, want: []string{"--type=I", "app.lnk"}},
		{name: "long flag passes", args: []string{"--json", "app.lnk"}, want: []string{"--json", "app.lnk"}},
		{name: "flag value kept", args: []string{"--type", "W", "app.lnk"}, want: []string{"--type", "W", "app.lnk"}},
		{name: "config value not a switch", args: []string{"--config", "/F", "app.lnk"}, want: []string{"--config", "/F", "app.lnk"}},
		{name: "unix path", args: []string{"/home/u/app.lnk"}, want: []string{"/home/u/app.lnk"}},
		{name: "root file with dot", args: []string{"/app.lnk"}, want: []string{"/app.lnk"}},
		{name: "unknown switch", args: []string{"/X", "app.lnk"}, wantErr: "unknown switch"},
		{name: "two fields", args: []string{"/F", "/P", "app.lnk"}, wantErr: "only one field switch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("normalizeArgs(%q) error = %v, want %q", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeArgs(%q) unexpected error: %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("normalizeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
