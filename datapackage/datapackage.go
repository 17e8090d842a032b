// Package datapackage reads monthly price series from data packages.
//
// A data package is a datapackage.json descriptor listing resources. Each
// resource points to a CSV file and declares a kind in its "datahub.type"
// property, and optionally a schema of typed fields:
//
//	{
//	  "resources": [
//	    {
//	      "path": "data/monthly.csv",
//	      "datahub": {"type": "original"},
//	      "schema": {"fields": [{"name": "Date", "type": "yearmonth"}, {"name": "Price", "type": "number"}]}
//	    }
//	  ]
//	}
//
// The first column typed "date" or "yearmonth" dates the rows (column 0 by
// default), and the first "number" column after it is the price (column 1 by
// default).
package datapackage

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dcasim"
)

// Ref identifies a resource in a data package.
type Ref struct {
	Package    string // path or URL of the datapackage.json
	Resource   int    // index of the resource in the package
	Kind       string // expected "datahub.type"
	PriceField string // name of the price column, optional
}

func (r Ref) String() string { return fmt.Sprintf("%s#%d", r.Package, r.Resource) }

// Field is a column declared in a resource schema.
type Field struct {
	Name string
	Type string
}

// Resource is the description of one resource of a data package.
type Resource struct {
	Name   string
	Path   string // as declared in the descriptor
	Kind   string
	Fields []Field
}

// ReadDescriptor reads and decodes a datapackage.json from a file or an URL.
func ReadDescriptor(location string) (any, error) {
	rc, err := open(location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var jobj any
	if err := json.NewDecoder(rc).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid descriptor %q: %w", location, err)
	}
	return jobj, nil
}

// LookupResource extracts the resource at index from a decoded descriptor.
func LookupResource(descriptor any, index int) (Resource, error) {
	prefix := fmt.Sprintf("$.resources[%d]", index)
	if _, err := get(prefix, descriptor); err != nil {
		return Resource{}, fmt.Errorf("no resource %d: %w", index, err)
	}
	var res Resource
	var err error
	if res.Path, err = getString(prefix+".path", descriptor); err != nil {
		return Resource{}, err
	}
	// name and kind are optional, a missing kind never matches an expected one.
	res.Name, _ = getString(prefix+".name", descriptor)
	res.Kind, _ = getString(prefix+".datahub.type", descriptor)

	if jfields, err := get(prefix+".schema.fields", descriptor); err == nil {
		list, _ := jfields.([]any)
		for _, jf := range list {
			m, ok := jf.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			typ, _ := m["type"].(string)
			res.Fields = append(res.Fields, Field{Name: name, Type: typ})
		}
	}
	return res, nil
}

// get evaluates a jsonpath.
func get(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return jval, nil
}

func getString(path string, jobj any) (string, error) {
	jval, err := get(path, jobj)
	if err != nil {
		return "", err
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("cannot read %q: not a string %v", path, jval)
	}
	return s, nil
}

// Open opens the resource identified by ref and returns it as a Source.
//
// The resource kind is checked against ref.Kind before the data is opened: a
// mismatch is a *dcasim.ConfigurationError.
func Open(ref Ref) (*Dataset, error) {
	descriptor, err := ReadDescriptor(ref.Package)
	if err != nil {
		return nil, &dcasim.ConfigurationError{Reason: ref.String(), Err: err}
	}
	res, err := LookupResource(descriptor, ref.Resource)
	if err != nil {
		return nil, &dcasim.ConfigurationError{Reason: ref.String(), Err: err}
	}
	if ref.Kind != "" && res.Kind != ref.Kind {
		return nil, &dcasim.ConfigurationError{
			Reason: fmt.Sprintf("expected to find %q dataset, but %q found with index %d in datapackage %q", ref.Kind, res.Kind, ref.Resource, ref.Package),
			Err:    dcasim.ErrWrongKind,
		}
	}

	location, err := resolve(ref.Package, res.Path)
	if err != nil {
		return nil, &dcasim.ConfigurationError{Reason: ref.String(), Err: err}
	}
	rc, err := open(location)
	if err != nil {
		return nil, err
	}
	d, err := newDataset(res, rc, ref.PriceField)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("cannot read %s: %w", location, err)
	}
	log.Printf("opened %q dataset %s (%s)", res.Kind, ref, location)
	return d, nil
}

// resolve returns the location of a resource path relative to its descriptor.
func resolve(descriptor, resource string) (string, error) {
	if isRemote(resource) {
		return resource, nil
	}
	if isRemote(descriptor) {
		base, err := url.Parse(descriptor)
		if err != nil {
			return "", err
		}
		rel, err := url.Parse(path.Clean(resource))
		if err != nil {
			return "", err
		}
		return base.ResolveReference(rel).String(), nil
	}
	if filepath.IsAbs(resource) {
		return resource, nil
	}
	return filepath.Join(filepath.Dir(descriptor), filepath.FromSlash(resource)), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

var _ io.Closer = (*Dataset)(nil)
var _ dcasim.Source = (*Dataset)(nil)
