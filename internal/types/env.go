package types

// LocalEnv is a directory's override file merged over the ambient
// process environment. FromFile holds only the keys the file itself
// defined, so callers can tell a file-backed override from an ambient
// one.
type LocalEnv struct {
	Values   map[string]string
	FilePath string
	FromFile map[string]string
}

// Lookup returns the value for key. Empty values read as unset, the
// same way a shell treats VAR= assignments.
func (e LocalEnv) Lookup(key string) (string, bool) {
	value, ok := e.Values[key]
	return value, ok && value != ""
}

func (e LocalEnv) FileDefined(key string) bool {
	_, ok := e.FromFile[key]
	return ok
}
