package descriptor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Descriptor file names probed by the reader, in order
const (
	ConanDataFile = "conandata.yml"
	PyProjectFile = "pyproject.toml"
)

type parser func(data []byte) (string, error)

type descriptorFile struct {
	name  string
	parse parser
}

// Reader reads the declared version from project descriptors
type Reader struct {
	files []descriptorFile
}

// New creates a new descriptor reader
func New() *Reader {
	return &Reader{
		files: []descriptorFile{
			{name: ConanDataFile, parse: parseConanData},
			{name: PyProjectFile, parse: parsePyProject},
		},
	}
}

// ReadVersion returns the version declared by the first descriptor in dir
// that declares one. An empty string without error means no descriptor
// declares a version. The files are never modified.
func (r *Reader) ReadVersion(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	for _, file := range r.files {
		path := filepath.Join(dir, file.name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", goerr.Wrap(err, "failed to read project descriptor", goerr.V("path", path))
		}

		version, err := file.parse(data)
		if err != nil {
			return "", goerr.Wrap(err, "failed to parse project descriptor", goerr.V("path", path))
		}

		if version = strings.TrimSpace(version); version != "" {
			return version, nil
		}
	}

	return "", nil
}

func parseConanData(data []byte) (string, error) {
	var doc struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", goerr.Wrap(err, "invalid YAML")
	}
	return doc.Version, nil
}

func parsePyProject(data []byte) (string, error) {
	var doc struct {
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", goerr.Wrap(err, "invalid TOML")
	}
	return doc.Project.Version, nil
}
