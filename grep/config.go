package grep

import (
	"github.com/morikuni/failure/v2"
)

// IgnoreCaseEnv is the environment variable that enables case-insensitive
// matching when no case flag argument is given. Any value counts as set.
const IgnoreCaseEnv = "IGNORE_CASE"

// Config holds the resolved inputs of a single search run
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Resolve builds a Config from positional arguments (program name excluded)
// and whether IGNORE_CASE is set.
//
// An explicit third argument always wins over the environment, including
// "false". Arguments after the third are ignored.
func Resolve(args []string, envIgnoreCase bool) (Config, error) {
	if len(args) < 1 {
		return Config{}, failure.New(MissingQuery,
			failure.Message("Problem parsing arguments: missing query"),
		)
	}
	if len(args) < 2 {
		return Config{}, failure.New(MissingFilePath,
			failure.Message("Problem parsing arguments: missing file path"),
			failure.Context{"query": args[0]},
		)
	}

	ignoreCase := envIgnoreCase
	if len(args) > 2 {
		v, err := parseCaseFlag(args[2])
		if err != nil {
			return Config{}, err
		}
		ignoreCase = v
	}

	return Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase,
	}, nil
}

// parseCaseFlag accepts exactly "true" or "false".
func parseCaseFlag(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, failure.New(InvalidCaseFlag,
		failure.Message("Problem parsing arguments: Invalid case flag: provided string was not `true` or `false`"),
		failure.Context{"flag": s},
	)
}

// Search runs the matcher selected by IgnoreCase over content
func (c Config) Search(content string) []string {
	if c.IgnoreCase {
		return SearchCaseInsensitive(c.Query, content)
	}
	return Search(c.Query, content)
}
