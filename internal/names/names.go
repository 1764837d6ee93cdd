package names

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	BuiltinFile = "names_etc.xml"
	UserFile    = "narratorNames.xml"
)

// written to a fresh user list
var seedNames = []string{"JOHN", "MAN", "WOMAN", "CAITLIN"}

type nameList struct {
	XMLName xml.Name `xml:"names"`
	Names   []string `xml:"name"`
}

// Dictionary is a case-insensitive set of speaker names backed by two
// XML files: a read-only built-in list and a user list that Save rewrites.
// Names are stored upper-cased.
type Dictionary struct {
	folder  string
	builtin []string
	user    []string
}

// Open loads both lists from folder. When the user list does not exist it
// is created with a few seed names.
func Open(folder string) (*Dictionary, error) {
	d := &Dictionary{folder: folder}

	builtin, err := readList(filepath.Join(folder, BuiltinFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	d.builtin = builtin

	user, err := readList(d.UserPath())
	switch {
	case err == nil:
		d.user = user
	case errors.Is(err, os.ErrNotExist):
		d.user = slices.Clone(seedNames)
		if err := d.Save(); err != nil {
			return nil, fmt.Errorf("failed to create user names list: %w", err)
		}
	default:
		return nil, err
	}

	return d, nil
}

func (d *Dictionary) UserPath() string {
	return filepath.Join(d.folder, UserFile)
}

// Names returns the built-in names followed by the user names
func (d *Dictionary) Names() []string {
	return slices.Concat(d.builtin, d.user)
}

func (d *Dictionary) Contains(name string) bool {
	upper := strings.ToUpper(strings.TrimSpace(name))
	return slices.Contains(d.builtin, upper) || slices.Contains(d.user, upper)
}

// Add puts name on the user list. It reports false for blank or known
// names. Call Save to persist.
func (d *Dictionary) Add(name string) bool {
	if strings.TrimSpace(name) == "" || d.Contains(name) {
		return false
	}
	d.user = append(d.user, strings.ToUpper(strings.TrimSpace(name)))
	return true
}

// Save atomically rewrites the user list
func (d *Dictionary) Save() error {
	if err := os.MkdirAll(d.folder, 0755); err != nil {
		return err
	}

	data, err := xml.MarshalIndent(nameList{Names: d.user}, "", "  ")
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(data)
	buf.WriteString("\n")

	path := d.UserPath()
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to save names: %w", err)
	}
	if !existed {
		if err := os.Chmod(path, 0644); err != nil {
			return fmt.Errorf("failed to set file permissions: %w", err)
		}
	}
	return nil
}

func readList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list nameList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse names file %s: %w", path, err)
	}

	out := make([]string, 0, len(list.Names))
	for _, n := range list.Names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, strings.ToUpper(n))
		}
	}
	return out, nil
}

// ResolveFolder picks <exeDir>/Dictionaries when it exists, otherwise
// <user config dir>/Subtitle Edit/Dictionary
func ResolveFolder(exeDir string) (string, error) {
	local := filepath.Join(exeDir, "Dictionaries")
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return local, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate dictionary folder: %w", err)
	}
	return filepath.Join(dir, "Subtitle Edit", "Dictionary"), nil
}
