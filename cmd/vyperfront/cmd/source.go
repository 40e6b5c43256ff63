package cmd

import "os"

// readSource loads a single source file, logging the path at debug level.
func readSource(path string) (string, error) {
	log.Debugf("reading %s", path)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
