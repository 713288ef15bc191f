package seenfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
)

// Store хранит идентификаторы разосланных объявлений в плоском JSON-файле.
// Набор только растёт: идентификаторы из него никогда не удаляются.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load читает сохранённый набор. Отсутствующий, нечитаемый или битый файл
// трактуется как пустой набор, а не как ошибка.
func (s *Store) Load(ctx context.Context) (map[string]struct{}, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SeenFileStore"})

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Seen ids file is unreadable, treating as empty", port.Fields{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return make(map[string]struct{}), nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("Seen ids file is not a valid list, treating as empty", port.Fields{
			"path":  s.path,
			"error": err.Error(),
		})
		return make(map[string]struct{}), nil
	}

	ids := make(map[string]struct{}, len(raw))
	for _, el := range raw {
		switch v := el.(type) {
		case string:
			ids[v] = struct{}{}
		case float64:
			ids[strconv.FormatFloat(v, 'f', -1, 64)] = struct{}{}
		default:
			ids[fmt.Sprint(v)] = struct{}{}
		}
	}
	return ids, nil
}

// Save сериализует набор отсортированным, человекочитаемым JSON-списком.
func (s *Store) Save(ctx context.Context, ids map[string]struct{}) error {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("seen store: failed to marshal ids: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("seen store: failed to write %s: %w", s.path, err)
	}
	return nil
}
