package templates

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/embedded"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
)

// Catalog holds a versioned set of packing templates loaded from YAML.
// The zero value is unusable; construct with New.
type Catalog struct {
	options   *catalogOptions
	version   int
	templates *Templates
}

// catalogOptions configures where catalog data is read from.
type catalogOptions struct {
	readFS fs.FS
}

// Option is a function that configures a Catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to read from a custom filesystem.
func WithFS(fsys fs.FS) Option {
	return func(o *catalogOptions) {
		o.readFS = fsys
	}
}

// WithPath configures the catalog to read from a directory on disk.
// Useful for editing template data without recompiling.
func WithPath(path string) Option {
	return func(o *catalogOptions) {
		o.readFS = os.DirFS(path)
	}
}

// New creates a catalog and loads it. With no options the embedded
// catalog compiled into the binary is used.
func New(opts ...Option) (*Catalog, error) {
	options := &catalogOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.readFS == nil {
		options.readFS = embedded.CatalogFS()
	}

	cat := &Catalog{
		options:   options,
		templates: NewTemplates(),
	}
	if err := cat.Load(); err != nil {
		return nil, errors.WrapResource("load", "template catalog", "", err)
	}
	return cat, nil
}

// catalogFile is the on-disk shape of the template catalog.
type catalogFile struct {
	Version   int        `yaml:"version"`
	Templates []Template `yaml:"templates"`
}

// Load reads templates.yaml from the configured filesystem, replacing
// any previously loaded templates.
func (c *Catalog) Load() error {
	data, err := fs.ReadFile(c.options.readFS, "templates.yaml")
	if err != nil {
		return errors.WrapIO("read", "templates.yaml", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.WrapParse("yaml", "templates.yaml", err)
	}

	c.templates.Clear()
	c.version = file.Version
	for i := range file.Templates {
		t := file.Templates[i]
		if err := validateItems(&t); err != nil {
			return err
		}
		if err := c.templates.Set(t.Key, &t); err != nil {
			return errors.WrapResource("set", "template", t.Key, err)
		}
	}
	return nil
}

// validateItems checks declared canonical keys against the name-derived
// equivalence classes. A declared key is authoritative, but when the
// name matches a known class the two must agree; disagreement is a data
// error. Items that match a class without declaring a key are left
// standalone on purpose (a sleeping bag liner is not a sleeping bag).
func validateItems(t *Template) error {
	for i := range t.Items {
		item := &t.Items[i]
		if item.CanonicalKey == "" {
			continue
		}
		if class, ok := canonical.ClassKey(item.Name); ok && class != item.CanonicalKey {
			return &errors.ValidationError{
				Field:   "canonical_key",
				Value:   item.CanonicalKey,
				Message: "item " + strconv.Quote(item.Name) + " in template " + strconv.Quote(t.Key) + " belongs to class " + strconv.Quote(class),
			}
		}
	}
	return nil
}

// Version returns the catalog data version.
func (c *Catalog) Version() int {
	return c.version
}

// Templates returns the template collection.
func (c *Catalog) Templates() *Templates {
	return c.templates
}

// Template returns a template by key.
func (c *Catalog) Template(key string) (Template, error) {
	template, ok := c.templates.Get(key)
	if !ok {
		return Template{}, &errors.NotFoundError{
			Resource: "template",
			ID:       key,
		}
	}
	return *template, nil
}

// Select resolves template keys to templates, preserving the caller's
// order. Unknown keys are skipped rather than failing: generation
// degrades to whatever templates exist.
func (c *Catalog) Select(keys ...string) []Template {
	selected := make([]Template, 0, len(keys))
	for _, key := range keys {
		if template, ok := c.templates.Get(key); ok {
			selected = append(selected, *template)
		}
	}
	return selected
}
