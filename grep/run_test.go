package grep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// readTestFile reads a test file from the testdata directory
func readTestFile(t *testing.T, filename string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("Failed to read test file %s: %v", filename, err)
	}
	return string(content)
}

func TestRun(t *testing.T) {
	poem := filepath.Join("testdata", "poem.txt")

	tests := []struct {
		name          string
		args          []string
		envIgnoreCase bool
		want          []string
	}{
		{
			name:          "explicit false overrides environment",
			args:          []string{"to", poem, "false"},
			envIgnoreCase: true,
			want: []string{
				"Are you nobody, too?",
				"How dreary to be somebody!",
			},
		},
		{
			name:          "explicit true with environment",
			args:          []string{"to", poem, "true"},
			envIgnoreCase: true,
			want: []string{
				"Are you nobody, too?",
				"How dreary to be somebody!",
				"To tell your name the livelong day",
				"To an admiring bog!",
			},
		},
		{
			name:          "environment only",
			args:          []string{"frog", poem},
			envIgnoreCase: true,
			want:          []string{"How public, like a frog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.args, tt.envIgnoreCase)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}

			got, err := Run(cfg)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Run() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_FileReadFailure(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "binary.bin")
	if err := os.WriteFile(invalid, []byte{0xff, 0xfe, 0x00, 'a'}, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.txt")},
		{name: "directory", path: dir},
		{name: "invalid utf-8", path: invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(Config{Query: "a", FilePath: tt.path})
			if err == nil {
				t.Fatalf("Expected error, got results %v", got)
			}
			if !failure.Is(err, FileReadFailure) {
				t.Errorf("Expected error %v, got %v", FileReadFailure, err)
			}
			if got != nil {
				t.Errorf("Expected no results, got %v", got)
			}
			if failure.MessageOf(err) == "" {
				t.Error("Expected a message on the error")
			}
		})
	}
}
