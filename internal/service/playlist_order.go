package service

import "github.com/Freeeeeet/congregation_scheduler/internal/model"

// nextPosition возвращает позицию для добавления в конец категории
func nextPosition(entries []*model.PlaylistEntry, category model.SongCategory) int {
	max := 0
	for _, entry := range entries {
		if entry.Category == category && entry.Position > max {
			max = entry.Position
		}
	}
	return max + 1
}

// countCategory считает записи категории
func countCategory(entries []*model.PlaylistEntry, category model.SongCategory) int {
	count := 0
	for _, entry := range entries {
		if entry.Category == category {
			count++
		}
	}
	return count
}

// renumberEntries пересчитывает позиции по полному желаемому порядку id.
// Порядок разбивается по категориям: гимны нумеруются с единицы в порядке
// появления в списке, припевы — отдельно с единицы. Список обязан
// содержать ровно те же id, что и план, иначе ErrOrderingMismatch.
func renumberEntries(entries []*model.PlaylistEntry, orderedIDs []int64) (map[int64]int, error) {
	if len(orderedIDs) != len(entries) {
		return nil, ErrOrderingMismatch
	}

	byID := make(map[int64]*model.PlaylistEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	positions := make(map[int64]int, len(orderedIDs))
	counters := make(map[model.SongCategory]int, 2)

	for _, id := range orderedIDs {
		entry, ok := byID[id]
		if !ok {
			return nil, ErrOrderingMismatch
		}
		if _, seen := positions[id]; seen {
			return nil, ErrOrderingMismatch
		}

		counters[entry.Category]++
		positions[id] = counters[entry.Category]
	}

	return positions, nil
}
