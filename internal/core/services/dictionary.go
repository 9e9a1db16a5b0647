package services

import (
	"errors"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/core/domain"
	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// BuildDictionary validates lines and merges words that share a letter
// signature. Invalid lines are counted and skipped. Entries keep the order in
// which their signature was first seen.
func BuildDictionary(lines []string) (*domain.Dictionary, domain.DictionaryStats) {
	logger.Section("Dictionary")
	defer logger.Timed("dictionary")()

	stats := domain.DictionaryStats{
		Total:    len(lines),
		Rejected: make(map[error]int),
	}

	index := make(map[domain.LetterSet]*domain.WordEntry, len(lines))
	entries := make([]*domain.WordEntry, 0, len(lines))

	for _, line := range lines {
		letters, err := domain.ParseLetters(line)
		if err != nil {
			stats.Ignored++
			stats.Rejected[rejectionKind(err)]++
			logger.Debug("Ignored word %q: %v", line, errors.Unwrap(err))
			continue
		}

		if existing, ok := index[letters]; ok {
			existing.Forms = append(existing.Forms, line)
			stats.Merged++
			continue
		}

		e := &domain.WordEntry{Letters: letters, Forms: []string{line}}
		index[letters] = e
		entries = append(entries, e)
	}

	stats.Distinct = len(entries)
	logger.Info("Read %d lines: %d ignored, %d distinct, %d merged",
		stats.Total, stats.Ignored, stats.Distinct, stats.Merged)

	return domain.NewDictionary(entries), stats
}

// rejectionKind maps a validation error to its sentinel.
func rejectionKind(err error) error {
	for _, kind := range domain.ValidationErrors() {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return err
}
