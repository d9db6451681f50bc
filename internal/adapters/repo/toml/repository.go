package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	profilePathKey    = "scoring.profile"
	profileFileMode   = 0o600
	profileDirMode    = 0o700
	profileConfigDir  = "twmj"
	profileConfigFile = "scoring.toml"
	tempFilePattern   = ".scoring-*.toml.tmp"
)

// ScoreProfileRepository keeps the round parameters used by the point
// counter in a small versioned TOML file. A missing file yields the defaults.
type ScoreProfileRepository struct {
	path  string
	clock ports.Clock
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ScoreProfileRepository = (*ScoreProfileRepository)(nil)

func NewScoreProfileRepository(cfg *viper.Viper) (*ScoreProfileRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(profilePathKey)
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		path = filepath.Join(configDir, profileConfigDir, profileConfigFile)
	}

	path, err := normalizeProfilePath(path)
	if err != nil {
		return nil, err
	}

	return &ScoreProfileRepository{path: path, clock: ports.SystemClock{}, mu: lockForPath(path)}, nil
}

func (r *ScoreProfileRepository) Path() string {
	return r.path
}

func (r *ScoreProfileRepository) Load(ctx context.Context) (domain.ScoreParams, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreParams{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ScoreParams{}, err
	}

	return fromSchema(file.Scoring)
}

func (r *ScoreProfileRepository) Save(ctx context.Context, params domain.ScoreParams) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !params.WinnerSeat.Valid() || !params.CurrentWind.Valid() {
		return fmt.Errorf("%w: winner seat and current wind must be set", domain.ErrValidation)
	}
	if params.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier must be at least 1", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if params.UpdatedAt.IsZero() {
		params.UpdatedAt = r.clock.Now()
	}

	file := fileSchema{Scoring: toSchema(params)}
	return r.writeSchema(file)
}

func (r *ScoreProfileRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read scoring profile: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode scoring profile: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *ScoreProfileRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), profileDirMode); err != nil {
		return fmt.Errorf("create scoring profile directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode scoring profile: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp scoring profile: %w", err)
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
		return fmt.Errorf("write temp scoring profile: %w", err)
	}

	if err := tempFile.Chmod(profileFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp scoring profile: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp scoring profile: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace scoring profile: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeProfilePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve scoring profile path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(params domain.ScoreParams) scoringSchema {
	return scoringSchema{
		WinnerSeat:  params.WinnerSeat.String(),
		CurrentWind: params.CurrentWind.String(),
		WinningTile: params.WinningTile,
		SelfDrawn:   &params.SelfDrawn,
		DoorClear:   &params.DoorClear,
		BaseValue:   &params.BaseValue,
		Multiplier:  &params.Multiplier,
		UpdatedAt:   formatTime(params.UpdatedAt),
	}
}

func fromSchema(schema scoringSchema) (domain.ScoreParams, error) {
	params := domain.DefaultScoreParams()

	if schema.WinnerSeat != "" {
		seat, err := domain.ParseSeat(schema.WinnerSeat)
		if err != nil {
			return domain.ScoreParams{}, fmt.Errorf("scoring profile winner_seat: %w", err)
		}
		params.WinnerSeat = seat
	}
	if schema.CurrentWind != "" {
		wind, err := domain.ParseSeat(schema.CurrentWind)
		if err != nil {
			return domain.ScoreParams{}, fmt.Errorf("scoring profile current_wind: %w", err)
		}
		params.CurrentWind = wind
	}

	params.WinningTile = schema.WinningTile
	if schema.SelfDrawn != nil {
		params.SelfDrawn = *schema.SelfDrawn
	}
	if schema.DoorClear != nil {
		params.DoorClear = *schema.DoorClear
	}
	if schema.BaseValue != nil {
		params.BaseValue = *schema.BaseValue
	}
	if schema.Multiplier != nil && *schema.Multiplier > 0 {
		params.Multiplier = *schema.Multiplier
	}
	params.UpdatedAt = parseTime(schema.UpdatedAt)

	return params, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
