package battlemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Encode writes t in the text form read by Parse. Resources are written in
// code order.
func Encode(w io.Writer, t *Template) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d", t.width, t.height)
	row := make([]byte, t.width)
	for y := range t.height {
		for x := range t.width {
			row[x] = t.points[x][y].Char()
		}
		bw.WriteByte('\n')
		bw.Write(row)
	}

	for _, res := range Resources {
		coords, ok := t.resources[res]
		if !ok {
			continue
		}
		bw.WriteByte('\n')
		bw.WriteString(strconv.Itoa(res.Code()))
		for _, c := range coords {
			bw.WriteByte(' ')
			bw.WriteString(c.String())
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing map template: %w", err)
	}
	return nil
}

// WriteFile encodes t into the file at path. The template is written to a
// temporary file in the same directory and renamed over path, so a failed
// write leaves any existing file intact. An existing file keeps its mode.
func WriteFile(path string, t *Template) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating map template file: %w", err)
	}
	tmp := f.Name()

	if err := Encode(f, t); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("setting map template file mode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing map template file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing map template file: %w", err)
	}
	return nil
}
