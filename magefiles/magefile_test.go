//go:build mage

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdflags(t *testing.T) {
	assert.Equal(t, "-X main.version=v1.2.0", ldflags("v1.2.0"))
}

func TestBuildVersionFromEnv(t *testing.T) {
	t.Setenv("VERSION", "v0.3.1")
	assert.Equal(t, "v0.3.1", buildVersion())
}

func TestNonBlankLines(t *testing.T) {
	assert.Equal(t, 2, nonBlankLines([]byte("package main\n\n  \nfunc main() {}\n")))
}
