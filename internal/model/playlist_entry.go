package model

import "time"

type SongCategory string

const (
	SongCategoryHymn   SongCategory = "hymn"
	SongCategoryChorus SongCategory = "chorus"
)

// PlaylistEntry представляет один музыкальный номер в плане богослужения.
// Порядок хранится как позиция внутри категории; при отображении сначала
// идут все гимны, затем все припевы — категории не перемешиваются.
type PlaylistEntry struct {
	ID        int64        `json:"id"`
	ServiceID int64        `json:"service_id"`
	Category  SongCategory `json:"category"`
	ItemID    int64        `json:"item_id"`  // номер в сборнике
	Position  int          `json:"position"` // 1-based позиция внутри категории
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
