package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ka2n/minigrep/grep"
	"github.com/morikuni/failure/v2"
)

func TestRun(t *testing.T) {
	t.Setenv(grep.IgnoreCaseEnv, "")
	if err := os.Unsetenv(grep.IgnoreCaseEnv); err != nil {
		t.Fatal(err)
	}
	poem := filepath.Join("testdata", "poem.txt")
	missing := filepath.Join("testdata", "missing.txt")

	tests := []struct {
		name       string
		args       []string
		wantStatus int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "matches",
			args:       []string{"to", poem},
			wantStatus: 0,
			wantStdout: "Are you nobody, too?\nHow dreary to be somebody!\n",
		},
		{
			name:       "no matches",
			args:       []string{"zebra", poem},
			wantStatus: 0,
		},
		{
			name:       "missing query",
			args:       []string{},
			wantStatus: 1,
			wantStderr: "Error: Problem parsing arguments: missing query\n",
		},
		{
			name:       "missing file path",
			args:       []string{"to"},
			wantStatus: 1,
			wantStderr: "Error: Problem parsing arguments: missing file path\n",
		},
		{
			// the file does not exist, so a read would have failed differently
			name:       "invalid case flag before file access",
			args:       []string{"to", missing, "maybe"},
			wantStatus: 1,
			wantStderr: "Error: Problem parsing arguments: Invalid case flag: provided string was not `true` or `false`\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := run(tt.args, &stdout, &stderr)

			if status != tt.wantStatus {
				t.Errorf("run() = %d, want %d", status, tt.wantStatus)
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
		})
	}
}

func TestRun_FileReadFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join("testdata", "missing.txt")

	if status := run([]string{"to", missing}, &stdout, &stderr); status != 1 {
		t.Errorf("run() = %d, want 1", status)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	got := stderr.String()
	if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, "missing.txt") {
		t.Errorf("stderr = %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	withMessage := failure.New(grep.MissingQuery, failure.Message("Problem parsing arguments: missing query"))
	if got := userMessage(withMessage); got != "Problem parsing arguments: missing query" {
		t.Errorf("userMessage() = %q", got)
	}

	plain := errors.New("unknown flag: --nope")
	if got := userMessage(plain); got != "unknown flag: --nope" {
		t.Errorf("userMessage() = %q", got)
	}
}
