package infra

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads KEY=VALUE files into the process environment, ".env"
// when no path is given. Variables that are already set win. It returns the
// files that were actually read.
func LoadEnvFiles(paths ...string) []string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var loaded []string
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Skipping env file %s: %v", path, err)
			}
			continue
		}
		loaded = append(loaded, path)
	}
	return loaded
}
