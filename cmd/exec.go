package cmd

import (
	"os/exec"
)

// Process hooks, swapped in tests.
var (
	findExecutable = exec.LookPath
	execCommand    = exec.Command
)
