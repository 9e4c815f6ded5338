package config

import (
	"flag"
	"os"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: Config{LongPressTicks: 30},
		},
		{
			name: "env",
			env:  map[string]string{"ACTIONMAP_BINDINGS": "b.yaml", "ACTIONMAP_DEBUG": "true", "ACTIONMAP_LONG_PRESS_TICKS": "45"},
			want: Config{Bindings: "b.yaml", Debug: true, LongPressTicks: 45},
		},
		{
			name: "flags_override_env",
			env:  map[string]string{"ACTIONMAP_BINDINGS": "b.yaml", "ACTIONMAP_DEBUG": "true"},
			args: []string{"-bindings", "c.yaml", "-debug=false", "-watch"},
			want: Config{Bindings: "c.yaml", Watch: true, LongPressTicks: 30},
		},
		{
			name: "non_positive_long_press",
			args: []string{"-long-press", "0"},
			want: Config{LongPressTicks: 30},
		},
		{
			name:    "watch_without_file",
			args:    []string{"-watch"},
			wantErr: true,
		},
		{
			name:    "bad_env",
			env:     map[string]string{"ACTIONMAP_WATCH": "sometimes"},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, k := range []string{"ACTIONMAP_BINDINGS", "ACTIONMAP_WATCH", "ACTIONMAP_DEBUG", "ACTIONMAP_LONG_PRESS_TICKS"} {
				// Setenv registers the restore; the variable itself must be unset.
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range c.env {
				t.Setenv(k, v)
			}

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			got, err := Parse(fs, c.args)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}
