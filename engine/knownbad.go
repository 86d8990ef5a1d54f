package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

const dedupWindow = time.Hour
const previewChars = 200

// KnownBadStore is the append-only, deduplicated log of outputs that failed
// validation. All state lives on the store instance; access is serialized by
// a mutex so concurrent pipeline runs cannot interleave or double-log.
// Recording is best-effort and never returns an error to the caller.
type KnownBadStore struct {
	path string

	mu     sync.Mutex
	recent map[string]time.Time
	now    func() time.Time
}

func NewKnownBadStore(path string) *KnownBadStore {
	return &KnownBadStore{
		path:   path,
		recent: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Init creates the log directory and file if needed
func (s *KnownBadStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create known_bad directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create known_bad file: %w", err)
	}
	return f.Close()
}

// Record appends a failure to the log unless the same (originalText, tag)
// pair was already logged within the dedup window. The window map is pruned
// on every call.
func (s *KnownBadStore) Record(originalText, tag, shortComment, outputJSON string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, seen := range s.recent {
		if now.Sub(seen) >= dedupWindow {
			delete(s.recent, key)
		}
	}

	key := dedupKey(originalText, tag)
	if _, ok := s.recent[key]; ok {
		slog.Debug("skipped duplicate known_bad entry", "tag", tag, "comment", shortComment)
		return
	}
	s.recent[key] = now

	record := model.KnownBadRecord{
		ID:                  fmt.Sprintf("bad_%d", now.UnixMicro()),
		Tag:                 tag,
		ShortComment:        shortComment,
		OriginalTextPreview: preview(originalText),
		OutputJSONPreview:   preview(outputJSON),
		CreatedAt:           now.UTC().Format(time.RFC3339),
	}

	if err := s.append(record); err != nil {
		slog.Error("known_bad write failed", "tag", tag, "error", err)
		return
	}
	slog.Info("known_bad logged", "tag", tag, "comment", shortComment)
}

func (s *KnownBadStore) append(record model.KnownBadRecord) error {
	if err := s.Init(); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}

func dedupKey(originalText, tag string) string {
	sum := sha256.Sum256([]byte(originalText + ":" + tag))
	return hex.EncodeToString(sum[:])
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > previewChars {
		return string(runes[:previewChars])
	}
	return s
}
