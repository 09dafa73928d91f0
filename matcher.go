package fshidden

// Matcher decides whether a path should be left out of a listing or an event
// stream. It keeps no state between calls.
type Matcher struct {
	ignoreSys    bool
	ignoreHidden bool
	rules        *IgnoreRules
}

func NewMatcher(config *Config) (*Matcher, error) {
	m := &Matcher{
		ignoreSys:    config.IgnoreSysFiles,
		ignoreHidden: config.IgnoreHiddenFiles,
	}
	if config.IgnorePath != "" {
		rules, err := LoadIgnoreRules(config.IgnorePath)
		if err != nil {
			return nil, err
		}
		m.rules = rules
	}
	return m, nil
}

// Match reports whether path is a system file, is excluded by the ignore
// rules, or is hidden. Errors come from IsHidden.
func (m *Matcher) Match(path string) (bool, error) {
	if m.ignoreSys && isSystemFile(path) {
		return true, nil
	}
	if m.rules.MatchesPath(path) {
		return true, nil
	}
	if !m.ignoreHidden {
		return false, nil
	}
	return IsHidden(path)
}
