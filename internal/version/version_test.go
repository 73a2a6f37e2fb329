package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	prefix, date, commit := VersionPrefix, VersionDate, CommitHash
	t.Cleanup(func() { VersionPrefix, VersionDate, CommitHash = prefix, date, commit })

	VersionPrefix, VersionDate, CommitHash = "1.2", "20260101", "abc123"
	assert.Equal(t, "1.2-20260101-abc123", Print())
	assert.Contains(t, Detailed(), "qakit 1.2-20260101-abc123")
	assert.Contains(t, Detailed(), runtime.GOOS+"/"+runtime.GOARCH)
}
