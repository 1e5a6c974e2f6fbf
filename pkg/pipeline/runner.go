package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/skovanen/molgraph/pkg/cache"
	"github.com/skovanen/molgraph/pkg/chemio"
	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
	"github.com/skovanen/molgraph/pkg/observability"
	"github.com/skovanen/molgraph/pkg/render"
)

// Result holds the outputs of a pipeline run.
type Result struct {
	// Molecule is the converted molecule with compressed hydrogens.
	Molecule *mol.Molecule

	// Formula is the Hill-order molecular formula.
	Formula string

	// ContentHash identifies the converted molecule for cache keys and
	// change detection.
	ContentHash string

	// Artifacts maps each requested render format to its bytes.
	Artifacts map[string][]byte

	// Stats and CacheInfo describe how the run went.
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records per-stage timing and molecule dimensions.
type Stats struct {
	ConvertTime time.Duration
	RenderTime  time.Duration
	AtomCount   int
	BondCount   int
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	ConvertHit bool
	RenderHit  bool
}

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete convert → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Convert
	convertStart := time.Now()
	m, convertHit, err := r.ConvertWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	result.Molecule = m
	result.Formula = m.Formula()
	result.Stats.ConvertTime = time.Since(convertStart)
	result.CacheInfo.ConvertHit = convertHit
	if len(m.ResonanceForms) > 0 {
		result.Stats.AtomCount = m.ResonanceForms[0].AtomCount()
		result.Stats.BondCount = m.ResonanceForms[0].BondCount()
	}

	// Compute molecule hash for cache keys and change detection
	if data, err := marshalMolecule(m); err == nil {
		result.ContentHash = cache.Hash(data)
	}

	r.Logger.Info("converted molecule",
		"format", opts.format,
		"formula", result.Formula,
		"atoms", result.Stats.AtomCount,
		"bonds", result.Stats.BondCount,
		"duration", result.Stats.ConvertTime)

	if len(opts.Formats) == 0 {
		return result, nil
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ConvertWithCacheInfo decodes the input notation with caching and returns
// cache hit info. Cached molecules are stored in the JSON interchange form,
// so a hit restores every resonance form.
func (r *Runner) ConvertWithCacheInfo(ctx context.Context, opts Options) (*mol.Molecule, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	source := opts.Input
	if source == "" {
		source = "inline"
	}
	cacheKey := r.Keyer.ConvertKey(string(opts.format), cache.Hash([]byte(opts.source)))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if m, err := chemio.Read(chemio.FormatJSON, bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "convert")
				return m, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "convert")
	}

	observability.Convert().OnConvertStart(ctx, string(opts.format), source)
	start := time.Now()
	m, err := chemio.Read(opts.format, strings.NewReader(opts.source))
	atoms := 0
	if m != nil && len(m.ResonanceForms) > 0 {
		atoms = m.ResonanceForms[0].AtomCount()
	}
	observability.Convert().OnConvertComplete(ctx, string(opts.format), atoms, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := marshalMolecule(m); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLConvert); err == nil {
			observability.Cache().OnCacheSet(ctx, "convert", len(data))
		}
	}

	return m, false, nil // Cache miss
}

// Convert is a convenience wrapper that calls ConvertWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Convert(ctx context.Context, opts Options) (*mol.Molecule, error) {
	m, _, err := r.ConvertWithCacheInfo(ctx, opts)
	return m, err
}

// RenderWithCacheInfo draws the molecule with caching and returns cache hit
// info. The most stable resonance form (the first) is the one drawn.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, m *mol.Molecule, opts Options) (map[string][]byte, bool, error) {
	if len(m.ResonanceForms) == 0 {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "molecule has no resonance forms")
	}
	r.applyLogger(&opts)

	// Compute cache key from the molecule's interchange form
	data, err := marshalMolecule(m)
	if err != nil {
		return nil, false, fmt.Errorf("serialize molecule for cache key: %w", err)
	}
	contentHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.RenderKey(contentHash, opts.renderKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "render")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	dot := render.ToDOT(m.ResonanceForms[0], opts.RenderOptions())
	for _, format := range opts.Formats {
		observability.Render().OnRenderStart(ctx, format)
		start := time.Now()
		var out []byte
		switch format {
		case "dot":
			out = []byte(dot)
		case "svg":
			out, err = render.RenderSVG(dot)
		case "png":
			out, err = render.RenderPNG(dot)
		}
		observability.Render().OnRenderComplete(ctx, format, len(out), time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = out
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.RenderKey(contentHash, opts.renderKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLRender); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, m *mol.Molecule, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, m, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// marshalMolecule serializes a molecule to its JSON interchange form, the
// only notation that survives a round trip with every resonance form.
func marshalMolecule(m *mol.Molecule) ([]byte, error) {
	var buf bytes.Buffer
	if err := chemio.WriteJSON(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
