package moderation

import (
	"bufio"
	"bytes"
	"draw-guess/errors"
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/samber/lo"
)

//go:embed censored/*.txt
var censoredFS embed.FS

// Dictionary is the merged content of every word list found in a directory.
type Dictionary struct {
	Words     []string
	Languages []string
}

// DictionaryLoader reads one word list per language, named after it (e.g. "fr.txt").
type DictionaryLoader struct {
	fs fs.FS
}

func NewDictionaryLoader(f fs.FS) *DictionaryLoader {
	return &DictionaryLoader{fs: f}
}

// NewEmbeddedLoader reads the word lists shipped with the binary.
func NewEmbeddedLoader() *DictionaryLoader {
	return NewDictionaryLoader(censoredFS)
}

// LoadAll parses every .txt file of dir into a sorted list of unique words.
func (l *DictionaryLoader) LoadAll(dir string) (Dictionary, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return Dictionary{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return Dictionary{}, err
		}
		// Scanner copes with \r\n line endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			unique[strings.ToLower(line)] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return Dictionary{}, err
		}
	}

	if len(unique) == 0 {
		return Dictionary{}, errors.ErrEmptyWords
	}
	words := lo.Keys(unique)
	slices.Sort(words)
	return Dictionary{Words: words, Languages: languages}, nil
}
