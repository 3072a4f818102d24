// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The binary is expected at the repository root:
//
//	go build -o yamlast ./cmd/yamlast
const binaryPath = "../../yamlast"

func TestCheckValidExamples(t *testing.T) {
	stdout, _, err := runYamlast(t, []string{"check", "-R", "-f", "../../examples/valid"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Checked 2 file(s): 0 error(s), 0 warning(s)\n", stdout)
}

func TestCheckBrokenExample(t *testing.T) {
	stdout, stderr, err := runYamlast(t, []string{"check", "-f", "../../examples/broken/values.yml"}, "")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())

	assert.Contains(t, stdout, "values.yml:3:3: error: bad indentation of a mapping entry")
	assert.Contains(t, stdout, `values.yml:4:8: error: unidentified alias "nobody"`)
	assert.Contains(t, stdout, "Checked 1 file(s): 2 error(s), 0 warning(s)")
	assert.Equal(t, "yamlast: Error: Found 2 error(s) in 1 file(s)\n", stderr)
}

func TestParseFromStdin(t *testing.T) {
	stdout, _, err := runYamlast(t, []string{"parse", "-f", "-", "-o", "json"}, "../../examples/valid/openapi.yml")
	require.NoError(t, err)

	expected := `{
  "openapi": "3.1.0",
  "servers": [
    {
      "url": "//petstore.swagger.io/sandbox",
      "description": "Sandbox server",
      "variables": {
        "varName": "default"
      }
    }
  ]
}
`
	assert.Equal(t, expected, stdout)
}

func TestFmtOutputChecksClean(t *testing.T) {
	formatted, _, err := runYamlast(t, []string{"fmt", "-f", "../../examples/valid/multi.yml"}, "")
	require.NoError(t, err)

	tmp := t.TempDir() + "/formatted.yml"
	require.NoError(t, os.WriteFile(tmp, []byte(formatted), 0600))

	again, _, err := runYamlast(t, []string{"fmt", "-f", tmp}, "")
	require.NoError(t, err)
	assert.Equal(t, formatted, again)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runYamlast(t, []string{"version"}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "yamlast version "), stdout)
}

func runYamlast(t *testing.T, args []string, stdinFileName string) (string, string, error) {
	if _, err := os.Stat(binaryPath); err != nil {
		t.Skipf("Expected yamlast binary at %s: %s", binaryPath, err)
	}

	command := exec.Command(binaryPath, args...)
	stdOut := bytes.NewBufferString("")
	stdErr := bytes.NewBufferString("")
	command.Stdout = stdOut
	command.Stderr = stdErr
	command.Env = append(os.Environ(), "NO_COLOR=1")

	if stdinFileName != "" {
		fileToUseInStdIn, err := os.Open(stdinFileName)
		require.NoError(t, err)
		defer fileToUseInStdIn.Close()
		command.Stdin = fileToUseInStdIn
	}

	err := command.Run()
	return stdOut.String(), stdErr.String(), err
}
