package effect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GenerateDocumentPath creates a timestamped document filename in dir
func GenerateDocumentPath(dir, service string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.yaml", service, timestamp))
}

// FindDocuments lists the YAML documents in dir, newest first
func FindDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents directory: %w", err)
	}

	var docs []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && (strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			docs = append(docs, filepath.Join(dir, name))
		}
	}

	// Sort by modification time (newest first)
	sort.SliceStable(docs, func(i, j int) bool {
		infoI, errI := os.Stat(docs[i])
		infoJ, errJ := os.Stat(docs[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return docs, nil
}

// FindLatestDocument finds the most recent document in dir
func FindLatestDocument(dir string) (string, error) {
	docs, err := FindDocuments(dir)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("no effect documents found in %s", dir)
	}
	return docs[0], nil
}
