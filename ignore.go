package fshidden

import (
	"bufio"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreRules holds the patterns of a .gitignore style file.
type IgnoreRules struct {
	matcher *ignore.GitIgnore
}

// LoadIgnoreRules compiles the patterns in filePath. A missing file yields
// an empty rule set.
func LoadIgnoreRules(filePath string) (*IgnoreRules, error) {
	rules := &IgnoreRules{}

	file, err := os.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		rules.matcher = ignore.CompileIgnoreLines()
		return rules, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open ignore file")
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read ignore file %s", filePath)
	}

	rules.matcher = ignore.CompileIgnoreLines(lines...)
	return rules, nil
}

// MatchesPath reports whether path is excluded by the rules. A nil
// *IgnoreRules matches nothing.
func (r *IgnoreRules) MatchesPath(path string) bool {
	if r == nil {
		return false
	}
	return r.matcher.MatchesPath(path)
}
