package database

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGooseLoggerFatalfExits(t *testing.T) {
	if os.Getenv("GOOSE_FATALF_CHILD") == "1" {
		gooseLogger{}.Fatalf("migration %s failed", "00001")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestGooseLoggerFatalfExits$")
	cmd.Env = append(os.Environ(), "GOOSE_FATALF_CHILD=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected the process to exit, got %v", err)
	require.Equal(t, 1, exitErr.ExitCode())
}
