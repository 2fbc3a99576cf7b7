package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsSample(t *testing.T) {
	code := run([]string{"--print", "1"})
	assert.Equal(t, exitOK, code)
}

func TestRunExitCodes(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(broken, []byte("<alto><Layout>"), 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"--bogus"}, exitUsage},
		{"too many args", []string{"a.pdf", "b.pdf"}, exitUsage},
		{"missing pdf", []string{filepath.Join(t.TempDir(), "absent.pdf"), "--print", "1"}, exitConversion},
		{"broken description", []string{broken, "--print", "1"}, exitParse},
		{"missing description", []string{filepath.Join(t.TempDir(), "absent.xml"), "--print", "1"}, exitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
