package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "speechbench/internal/app/errors"
)

// File is the on-disk YAML layout of a catalog
type File struct {
	Version   string     `yaml:"version"`
	Providers []Provider `yaml:"providers"`
}

// Load reads and validates a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	path = os.ExpandEnv(path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(apperrors.ErrFileNotFound, "catalog file %s", path)
		}
		return nil, apperrors.Wrap(err, "failed to open catalog file")
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a YAML catalog document
func Decode(r io.Reader) (*Catalog, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse catalog YAML")
	}

	if len(file.Providers) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCatalog, "catalog has no providers")
	}
	if file.Version == "" {
		file.Version = "unversioned"
	}

	return New(file.Version, file.Providers)
}

// Encode writes the catalog as a YAML document that Decode accepts
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: c.Version(), Providers: c.All()}); err != nil {
		return fmt.Errorf("failed to marshal catalog to YAML: %w", err)
	}
	return enc.Close()
}
