package loader

import (
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// EnvLoader loads configuration from prefixed environment variables.
//
// USTRING_SPLIT_REMOVE_EMPTY=true becomes split.remove_empty = true: the
// first segment after the prefix names the section, the rest is the key.
type EnvLoader struct {
	prefix  string
	environ func() []string

	// raw holds paths whose values are kept as written.
	raw map[string]bool
}

// NewEnvLoader creates a loader for variables starting with prefix. The
// prefix should include the trailing underscore (e.g. "USTRING_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderFrom creates a loader reading from a fixed list of
// KEY=VALUE pairs instead of the process environment.
func NewEnvLoaderFrom(prefix string, env []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: func() []string { return env }}
}

// KeepStrings marks paths whose values are never converted, so that
// USTRING_SPLIT_SEPARATOR=1 stays the string "1".
func (l *EnvLoader) KeepStrings(paths ...string) *EnvLoader {
	if l.raw == nil {
		l.raw = make(map[string]bool, len(paths))
	}
	for _, p := range paths {
		l.raw[p] = true
	}
	return l
}

// Load returns the settings found in the environment. Empty values are
// kept as empty strings.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, ok := l.envToPath(name)
		if !ok {
			continue
		}
		if l.raw[path] {
			SetPath(config, path, value)
			continue
		}
		SetPath(config, path, parseValue(value))
	}
	return config, nil
}

// envToPath converts USTRING_LOG_LEVEL to log.level.
func (l *EnvLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return "", false
	}
	return section + "." + key, true
}

// parseValue gives environment strings the type a config file would have.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if (strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")) && gjson.Valid(s) {
		return gjson.Parse(s).Value()
	}
	return s
}
