// Package loader reads module and resource data files and assembles the
// catalog and resource index, applying stored learner progress first.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/resources"
)

// SupportedVersion is the newest data file format this build reads. Files
// with the same major version are accepted.
const SupportedVersion = "v1.0.0"

// Document is the on-disk shape of a data file. JSON files are read through
// the same decoder.
type Document struct {
	Version   string               `yaml:"version"`
	Modules   []catalog.Module     `yaml:"modules"`
	Resources []resources.Resource `yaml:"resources"`
}

// VersionError reports a data file whose format version can't be read.
type VersionError struct {
	Path    string
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: unsupported data version %q (want %s.x.x)", e.Path, e.Version, semver.Major(SupportedVersion))
}

// ConsistencyError is returned in strict mode when modules disagree with
// their own status.
type ConsistencyError struct {
	Findings []catalog.Inconsistency
}

func (e *ConsistencyError) Error() string {
	parts := make([]string, len(e.Findings))
	for i, f := range e.Findings {
		parts[i] = f.ModuleID + ": " + f.Problem
	}
	return fmt.Sprintf("%d inconsistent module(s): %s", len(e.Findings), strings.Join(parts, "; "))
}

// Parse decodes a data document. Unknown keys are rejected. An empty
// version is read as the supported version.
func Parse(name string, data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	if doc.Version == "" {
		doc.Version = SupportedVersion
	}
	v := doc.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Major(v) != semver.Major(SupportedVersion) {
		return nil, &VersionError{Path: name, Version: doc.Version}
	}
	doc.Version = semver.Canonical(v)

	for i := range doc.Modules {
		if doc.Modules[i].Status == "" {
			doc.Modules[i].Status = catalog.StatusNotStarted
		}
		if doc.Modules[i].Dependencies == nil {
			doc.Modules[i].Dependencies = []string{}
		}
	}
	return &doc, nil
}

// ReadFile reads and parses a data file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Parse(path, data)
}

// Options controls Load. Empty paths fall back to the built-in course.
type Options struct {
	CatalogPath   string
	ResourcesPath string

	// Progress is learner state applied to modules before the catalog is
	// built.
	Progress map[string]catalog.ProgressUpdate

	// Strict turns status inconsistencies and unknown resource affiliations
	// into errors.
	Strict bool

	Logger *logger.Logger
}

// Result is the assembled reference data.
type Result struct {
	Catalog   *catalog.Catalog
	Resources *resources.Index
	Findings  []catalog.Inconsistency
}

// Load reads data files (or the built-in seed), applies progress and builds
// the catalog and index.
func Load(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	modules := catalog.DefaultModules()
	var list []resources.Resource
	haveResources := false

	if opts.CatalogPath != "" {
		doc, err := ReadFile(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		modules = doc.Modules
		// A catalog file may carry its resources inline.
		if len(doc.Resources) > 0 {
			list, haveResources = doc.Resources, true
		}
		log.Debug("loaded catalog file", "path", opts.CatalogPath, "version", doc.Version, "modules", len(doc.Modules))
	}
	if opts.ResourcesPath != "" {
		doc, err := ReadFile(opts.ResourcesPath)
		if err != nil {
			return nil, err
		}
		list, haveResources = doc.Resources, true
		log.Debug("loaded resources file", "path", opts.ResourcesPath, "version", doc.Version, "resources", len(doc.Resources))
	}
	if !haveResources {
		list = resources.DefaultResources()
	}

	if len(opts.Progress) > 0 {
		modules = catalog.WithProgress(modules, opts.Progress)
	}

	cat, err := catalog.New(modules)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	var idxOpts []resources.Option
	if opts.Strict {
		idxOpts = append(idxOpts, resources.WithKnownModules(cat.Has))
	}
	idx, err := resources.New(list, idxOpts...)
	if err != nil {
		return nil, fmt.Errorf("build resource index: %w", err)
	}

	findings := cat.CheckConsistency()
	for _, f := range findings {
		log.Warn("inconsistent module", "module", f.ModuleID, "problem", f.Problem)
	}
	if opts.Strict && len(findings) > 0 {
		return nil, &ConsistencyError{Findings: findings}
	}

	return &Result{Catalog: cat, Resources: idx, Findings: findings}, nil
}
