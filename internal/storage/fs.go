package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-cli/internal/domain"
)

// FS persists solve reports as indented JSON, one file per report,
// bucketed by outcome: <dir>/{solved,unsolvable,timed-out}/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var outcomes = []domain.Outcome{domain.Solved, domain.Unsolvable, domain.TimedOut}

func (s *FS) pathFor(id string, o domain.Outcome) string {
	return filepath.Join(s.dir, o.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid report: missing ID")
	}
	target := s.pathFor(r.ID, r.Result.Outcome)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Report, error) {
	for _, o := range outcomes {
		data, err := os.ReadFile(s.pathFor(id, o))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Report
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.ReportMeta, error) {
	var out []domain.ReportMeta
	for _, o := range outcomes {
		dir := filepath.Join(s.dir, o.String())
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var r domain.Report
			if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
				continue // skip files that are not reports
			}
			out = append(out, domain.ReportMeta{
				ID:        r.ID,
				Source:    r.Source,
				Outcome:   r.Result.Outcome,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return out, nil
}
