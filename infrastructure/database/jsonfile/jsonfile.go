package jsonfile

import (
	"errors"
	"io/fs"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

var ErrFileNotFound = errors.New("data file not found")

// Reader lê o conteúdo bruto do arquivo de dados
type Reader interface {
	Read() ([]byte, error)
	Ping() error
	Path() string
}

// File é um arquivo JSON somente leitura, relido a cada chamada
type File struct {
	path string
}

func NewFile(cfg config.Data) *File {
	return &File{path: cfg.Path}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Read() ([]byte, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, f.wrap(err)
	}
	return raw, nil
}

// Ping verifica se o arquivo existe e é legível sem carregá-lo
func (f *File) Ping() error {
	file, err := os.Open(f.path)
	if err != nil {
		return f.wrap(err)
	}
	return file.Close()
}

func (f *File) wrap(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return pkgerrors.Wrapf(ErrFileNotFound, "%s", f.path)
	}
	return pkgerrors.Wrapf(err, "reading %s", f.path)
}
