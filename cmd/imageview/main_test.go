package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	notImage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no_args", nil, -1},
		{"unknown_flag", []string{"-x"}, -1},
		{"two_args", []string{"a.png", "b.png"}, -1},
		{"help", []string{"--help"}, -1},
		{"missing_file", []string{"missing.png"}, -2},
		{"undecodable_file", []string{notImage}, -2},
		{"dash_path_after_separator", []string{"--", "-dash.png"}, -2},
		{"dash_path_without_separator", []string{"-dash.png"}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(tc.args); got != tc.want {
				t.Fatalf("run(%q) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
