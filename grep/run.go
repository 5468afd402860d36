package grep

import (
	"os"
	"unicode/utf8"

	"github.com/ka2n/minigrep/log"
	"github.com/morikuni/failure/v2"
)

// ReadContent reads the whole file at path as text
func ReadContent(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(FileReadFailure),
			failure.Message(err.Error()),
			failure.Context{"path": path},
		)
	}
	if !utf8.Valid(b) {
		return "", failure.New(FileReadFailure,
			failure.Message(path+": stream did not contain valid UTF-8"),
			failure.Context{"path": path},
		)
	}

	log.Debug("read file", "path", path, "bytes", len(b))
	return string(b), nil
}

// Run reads the configured file and returns its matching lines.
// Nothing is returned on a read failure.
func Run(cfg Config) ([]string, error) {
	content, err := ReadContent(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	results := cfg.Search(content)
	log.Debug("search finished",
		"query", cfg.Query,
		"ignore_case", cfg.IgnoreCase,
		"matches", len(results),
	)
	return results, nil
}
