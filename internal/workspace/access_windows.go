//go:build windows

package workspace

import "os"

// checkWritable creates and removes a probe file, since Windows ACLs are not
// reflected in permission bits.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".spec-kit-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
