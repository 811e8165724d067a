package version

import "testing"

func TestInfo(t *testing.T) {
	defer func(v, c, b string) { Version, Commit, BuildTime = v, c, b }(Version, Commit, BuildTime)

	Version, Commit, BuildTime = "1.2.0", "0123456789abcdef", "2024-01-17"

	if got, want := Info(), "1.2.0 (0123456)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
	if got, want := Full(), "1.2.0 (commit: 0123456, built: 2024-01-17)"; got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}

	Commit = "abc"
	if got, want := Info(), "1.2.0 (abc)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
