//go:build !unix

package soundfs

// lockDir is a no-op where flock is unavailable; the in-process mutex still applies
func lockDir(dir string) (func(), error) {
	return func() {}, nil
}
