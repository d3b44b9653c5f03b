package cli_test

import (
	"testing"

	"trail.dev/trail/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.RunWithTrailBinary(m)
}

func getTrailBinary(t *testing.T) string {
	return testhelpers.TrailBinary(t)
}
