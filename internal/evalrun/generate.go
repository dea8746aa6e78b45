package evalrun

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entext/go-nereval/markup"
)

// GenerateResponses builds a .task1 response for every standard document
// in stdDir, derived from the standard's own token sets. A response
// generated this way must score F1 = 1 against its standard, which makes
// the generator a convenient evaluator smoke test.
func GenerateResponses(stdDir, outDir string, locorg bool) error {
	names, err := namesWithExt(stdDir, ".objects")
	if err != nil {
		return fmt.Errorf("scanning standard dir: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("no standard documents in %s", stdDir)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, name := range names {
		doc, err := markup.LoadDocument(stdDir, name)
		if err != nil {
			return err
		}

		body := markup.FormatResponse(doc.MakeTokenSets(locorg))
		path := filepath.Join(outDir, name+".task1")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}
