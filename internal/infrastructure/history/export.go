package history

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// ExportJSONL writes the full history to dest as one JSON object per line.
// Works against either backend since it only needs Load.
func ExportJSONL(store ports.HistoryStore, dest string) error {
	entries, err := store.Load()
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create export file: %v: %w", err, domain.ErrHistoryPersist)
	}
	defer file.Close()

	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal entry: %v: %w", err, domain.ErrHistoryPersist)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write export file: %v: %w", err, domain.ErrHistoryPersist)
		}
	}
	return nil
}
