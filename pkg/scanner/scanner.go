// Package scanner discovers candidate agent documents under source roots and
// parses them into records. Discovery and parsing are the only parallel part
// of the pipeline; the scanner joins all workers before returning, so later
// stages always see a complete, stably ordered record list.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
)

// agentFilePattern matches the document types agents are published as.
const agentFilePattern = "**/*.{md,yaml,yml}"

// defaultWorkers bounds the parse fan-out.
const defaultWorkers = 10

// denyFragments are filename fragments that mark a file as definitely not an
// agent. Matched case-insensitively against the base name.
var denyFragments = []glob.Glob{
	glob.MustCompile("*readme*"),
	glob.MustCompile("*license*"),
	glob.MustCompile("*contributing*"),
}

// denyDirs are path segments whose contents are never agent documents.
var denyDirs = map[string]bool{
	"node_modules": true,
}

// Source is one collection root to scan. Label identifies the origin in the
// index and feeds the provenance quality bonus.
type Source struct {
	Root  string
	Label string
}

// NewSource builds a Source whose label derives from the directory name,
// dropping the scratch-clone prefix collection roots usually carry.
func NewSource(root string) Source {
	label := strings.TrimPrefix(filepath.Base(root), "temp_")
	return Source{Root: root, Label: label}
}

// Scanner discovers and ingests agent documents.
type Scanner struct {
	workers int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers sets the parse worker count.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{workers: defaultWorkers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// candidate is one discovered file awaiting parsing.
type candidate struct {
	path   string
	source Source
}

// Scan discovers agent documents under every source root and parses them in
// parallel. The returned records preserve discovery order regardless of which
// worker finished first. Per-file failures and skipped non-agent documents
// never fail the scan; read errors are aggregated into the returned
// *multierror-backed error for reporting while the records remain usable.
func (s *Scanner) Scan(ctx context.Context, sources []Source) ([]*agent.Record, error) {
	log := logger.G(ctx)

	var candidates []candidate
	for _, source := range sources {
		paths, err := discover(source.Root)
		if err != nil {
			log.WithField("root", source.Root).WithError(err).Warn("Failed to scan source root, skipping")
			continue
		}
		for _, path := range paths {
			candidates = append(candidates, candidate{path: path, source: source})
		}
	}

	log.WithField("files", len(candidates)).Debug("Discovered candidate documents")

	// Fan out parsing across a bounded worker pool. Results land in a
	// fixed-index slice so input order survives, and the WaitGroup is a
	// hard barrier: nothing downstream starts until every worker is done.
	results := make([]*agent.Record, len(candidates))
	failures := make([]error, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := s.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], failures[i] = ingest(candidates[i])
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var records []*agent.Record
	var errs *multierror.Error
	for i, rec := range results {
		if failures[i] != nil {
			log.WithField("path", candidates[i].path).WithError(failures[i]).Warn("Failed to ingest document, skipping")
			errs = multierror.Append(errs, failures[i])
			continue
		}
		if rec == nil {
			continue // not an agent document
		}
		records = append(records, rec)
	}

	log.WithField("count", len(records)).Info("Ingested agent documents")
	return records, errs.ErrorOrNil()
}

// ingest reads and parses one candidate. A nil record with nil error means
// the document was readable but does not look like an agent.
func ingest(c candidate) (*agent.Record, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", c.path)
	}

	rec := agent.NewRecord(c.path, c.source.Label, string(data))
	if !rec.LooksLikeAgent() {
		return nil, nil
	}
	return rec, nil
}

// discover lists candidate files under root, excluding denied names, hidden
// directories and platform directories. The result order is doublestar's
// lexical walk order, which is stable across runs.
func discover(root string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), agentFilePattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to glob %q", root)
	}

	var paths []string
	for _, match := range matches {
		if Denied(match) {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
	}
	return paths, nil
}

// Denied reports whether a relative file path is excluded from ingestion by
// the deny-list: known non-agent filenames, hidden path segments, and
// platform directories.
func Denied(relPath string) bool {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	for _, segment := range segments[:len(segments)-1] {
		if strings.HasPrefix(segment, ".") || denyDirs[strings.ToLower(segment)] {
			return true
		}
	}

	base := strings.ToLower(segments[len(segments)-1])
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, pattern := range denyFragments {
		if pattern.Match(base) {
			return true
		}
	}
	return false
}
