package paths

import (
	"os"
)

const FilePerm = 0644

// AtomicWrite writes data to path via a temporary file + rename so a failed
// write never leaves a truncated file under the final name. The parent
// directory must already exist.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
