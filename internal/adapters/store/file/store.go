package file

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bnema/twmj/internal/adapters/metrics"
	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

const (
	storeDirMode    = 0o700
	recordFileMode  = 0o600
	recordExt       = ".json"
	tempFilePattern = ".template-*.json.tmp"
)

// Store keeps one JSON file per template key under root. Records carry their
// own expiry; expired and unreadable records are treated as absent and removed
// when they are next touched.
type Store struct {
	root    string
	ttl     time.Duration
	clock   ports.Clock
	metrics *metrics.Recorder
	locks   keyLocks
}

var _ ports.TemplateStore = (*Store)(nil)

type Option func(*Store)

func WithClock(clock ports.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Store) {
		s.metrics = recorder
	}
}

// NewStore creates root if needed.
func NewStore(root string, ttl time.Duration, opts ...Option) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("template store directory is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("template ttl must be positive, got %s", ttl)
	}

	s := &Store{
		root:  filepath.Clean(root),
		ttl:   ttl,
		clock: ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return nil, fmt.Errorf("create template store directory: %w", err)
	}

	return s, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Put(ctx context.Context, key domain.TemplateKey, template domain.Template) (domain.TemplateRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.TemplateRecord{}, err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return domain.TemplateRecord{}, err
	}

	unlock := s.locks.lock(string(key))
	defer unlock()

	now := s.clock.Now().UTC()
	existing, err := readRecord(path)
	switch {
	case err == nil:
		if !existing.Expired(now) {
			s.metrics.TemplateOp("put", "conflict")
			return domain.TemplateRecord{}, fmt.Errorf("%w: %q", domain.ErrTemplateConflict, key)
		}
	case errors.Is(err, os.ErrNotExist), errors.Is(err, errCorruptRecord):
	default:
		return domain.TemplateRecord{}, err
	}

	record := domain.TemplateRecord{
		Key:       key,
		ExpiresAt: now.Add(s.ttl),
		Template:  template.Clone(),
	}
	if err := s.writeRecord(path, record); err != nil {
		return domain.TemplateRecord{}, err
	}

	s.metrics.TemplateOp("put", "stored")
	return record, nil
}

func (s *Store) Get(ctx context.Context, key domain.TemplateKey) (domain.TemplateRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.TemplateRecord{}, err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("%w: %w", domain.ErrTemplateNotFound, err)
	}

	unlock := s.locks.lock(string(key))
	defer unlock()

	record, err := readRecord(path)
	switch {
	case err == nil:
		if !record.Expired(s.clock.Now()) {
			record.Key = key
			s.metrics.TemplateOp("get", "hit")
			return record, nil
		}
	case errors.Is(err, os.ErrNotExist):
		s.metrics.TemplateOp("get", "miss")
		return domain.TemplateRecord{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	case errors.Is(err, errCorruptRecord):
	default:
		return domain.TemplateRecord{}, err
	}

	if err := removeRecord(path); err != nil {
		return domain.TemplateRecord{}, err
	}

	s.metrics.TemplateOp("get", "expired")
	return domain.TemplateRecord{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
}

// List returns every live record ordered by expiry. Unreadable and expired
// records are skipped, not removed.
func (s *Store) List(ctx context.Context) ([]domain.TemplateRecord, error) {
	paths, err := s.recordPaths()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	records := make([]domain.TemplateRecord, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := readRecord(path)
		if err != nil || record.Expired(now) {
			continue
		}
		record.Key = keyFromPath(path)
		records = append(records, record)
	}

	slices.SortFunc(records, func(a, b domain.TemplateRecord) int {
		if c := a.ExpiresAt.Compare(b.ExpiresAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return records, nil
}

// Sweep removes every record that is expired at the time it is examined, and
// every record that cannot be decoded. Per-record failures do not stop the
// sweep; they are joined into the returned error.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	paths, err := s.recordPaths()
	if err != nil {
		return 0, err
	}

	var (
		removed int
		errs    []error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		ok, err := s.sweepRecord(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			removed++
		}
	}

	s.metrics.Swept(removed)
	return removed, errors.Join(errs...)
}

func (s *Store) sweepRecord(path string) (bool, error) {
	unlock := s.locks.lock(string(keyFromPath(path)))
	defer unlock()

	record, err := readRecord(path)
	switch {
	case err == nil:
		if !record.Expired(s.clock.Now()) {
			return false, nil
		}
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case errors.Is(err, errCorruptRecord):
	default:
		return false, err
	}

	if err := removeRecord(path); err != nil {
		return false, err
	}

	return true, nil
}

// WipeAll removes every record regardless of expiry.
func (s *Store) WipeAll(ctx context.Context) error {
	paths, err := s.recordPaths()
	if err != nil {
		return err
	}

	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		unlock := s.locks.lock(string(keyFromPath(path)))
		if err := removeRecord(path); err != nil {
			errs = append(errs, err)
		}
		unlock()
	}

	return errors.Join(errs...)
}

func (s *Store) recordPaths() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.root, "*"+recordExt))
	if err != nil {
		return nil, fmt.Errorf("list template records: %w", err)
	}

	return paths, nil
}

func (s *Store) pathForKey(key domain.TemplateKey) (string, error) {
	if err := domain.ValidateTemplateKey(key); err != nil {
		return "", err
	}

	return filepath.Join(s.root, string(key)+recordExt), nil
}

func (s *Store) writeRecord(path string, record domain.TemplateRecord) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(s.root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp template record: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp template record: %w", err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp template record: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp template record: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace template record %q: %w", record.Key, err)
	}

	cleanup = false
	return nil
}

func readRecord(path string) (domain.TemplateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.TemplateRecord{}, err
		}
		return domain.TemplateRecord{}, fmt.Errorf("read template record: %w", err)
	}

	return decodeRecord(data)
}

func removeRecord(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete template record: %w", err)
	}

	return nil
}

func keyFromPath(path string) domain.TemplateKey {
	return domain.TemplateKey(strings.TrimSuffix(filepath.Base(path), recordExt))
}
