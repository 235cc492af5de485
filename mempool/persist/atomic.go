package persist

import (
	"bufio"
	"os"
	"path/filepath"
)

// FileName is the name of the snapshot file within a pool's data
// directory.
const FileName = "poolstate.bin"

// SaveAtomic writes records and deleted to <dir>/poolstate.bin.tmp,
// fsyncs it, and renames it over <dir>/poolstate.bin, so a crash
// mid-write never leaves a half-written snapshot in place of a good one.
func SaveAtomic(dir string, records []Record, deleted []DeletedRecord) error {
	final := filepath.Join(dir, FileName)
	tmp := final + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := WriteSnapshot(bw, records, deleted); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, final)
}

// Load reads <dir>/poolstate.bin, if present. A missing file is not an
// error: it returns two nil slices, which the caller treats as an empty
// pool.
func Load(dir string) (records []Record, deleted []DeletedRecord, err error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	defer f.Close()

	return ReadSnapshot(f)
}
