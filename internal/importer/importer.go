// Package importer reads transactions from files dropped into a book's
// import directory.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Parser converts an import file into transactions. Parsers do not validate;
// the ledger does that when the transactions are appended.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
	Ext() string
}

// Registry holds named parsers. Each format and each extension maps to one
// parser.
type Registry struct {
	parsers map[string]Parser
	byExt   map[string]Parser
}

// FileInfo describes a file in the import directory.
type FileInfo struct {
	Name   string
	Path   string
	Size   int64
	Format string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
		byExt:   make(map[string]Parser),
	}
}

// Register adds a parser. Panics on duplicate format or extension.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	ext := strings.ToLower(p.Ext())
	if other, ok := r.byExt[ext]; ok {
		panic(fmt.Sprintf("duplicate parser extension %s: %s and %s", ext, other.Format(), key))
	}
	r.parsers[key] = p
	r.byExt[ext] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForFile picks a parser by file extension, or nil.
func (r *Registry) ForFile(name string) Parser {
	return r.byExt[strings.ToLower(filepath.Ext(name))]
}

// Formats lists the registered format names in sorted order.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PostingsParser{})
	r.Register(&JSONParser{})
	return r
}

// ParseFile opens path and parses it with p.
func ParseFile(p Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return txns, nil
}

// importDir is the subdirectory for import files.
const importDir = "import"

// processedDir is the subdirectory for imported files.
const processedDir = "import/processed"

// Scan returns the files in <bookDir>/import/ that some parser in r accepts.
func (r *Registry) Scan(bookDir string) ([]FileInfo, error) {
	dir := filepath.Join(bookDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := r.ForFile(e.Name())
		if p == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:   e.Name(),
			Path:   filepath.Join(dir, e.Name()),
			Size:   info.Size(),
			Format: p.Format(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(bookDir, fileName string) error {
	src := filepath.Join(bookDir, importDir, fileName)
	dstDir := filepath.Join(bookDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
