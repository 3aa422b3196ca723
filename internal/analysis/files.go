package analysis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore сохраняет загруженные отчёты в локальный каталог
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// Save возвращает имя сохранённого файла и путь к нему
func (f *FileStore) Save(r io.Reader, originalName string) (string, string, error) {
	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("medicalReport-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Ext(originalName))
	path := filepath.Join(f.basePath, name)

	out, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", "", fmt.Errorf("write file: %w", err)
	}
	return name, path, nil
}
