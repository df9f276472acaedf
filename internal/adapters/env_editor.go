package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// EnvFileEditorAdapter patches one KEY=value line of an override file,
// leaving every other byte alone.
type EnvFileEditorAdapter struct{}

func NewEnvFileEditorAdapter() EnvFileEditorAdapter {
	return EnvFileEditorAdapter{}
}

// SetValue replaces the value of key at path. The key is expected to
// appear exactly once: resolution just reported this file as the source
// of the current version, so a missing or duplicated line means the
// file changed underneath us, which is a defect rather than a user
// error.
func (a EnvFileEditorAdapter) SetValue(path string, key string, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}

	content := string(data)
	prefix := key + "="
	starts := lineStarts(content, prefix)
	if len(starts) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unable to find %s in %s", key, path))
	}
	if len(starts) > 1 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s appears %d times in %s", key, len(starts), path))
	}

	start := starts[0] + len(prefix)
	end := strings.IndexByte(content[start:], '\n')
	if end == -1 {
		end = len(content)
	} else {
		end += start
		if end > start && content[end-1] == '\r' {
			end--
		}
	}

	updated := content[:start] + value + content[end:]
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", path)).
			WithCause(err)
	}
	return nil
}

// lineStarts returns the offset of every line in content that begins
// with prefix.
func lineStarts(content string, prefix string) []int {
	var starts []int
	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.HasPrefix(line, prefix) {
			starts = append(starts, offset)
		}
		offset += len(line)
	}
	return starts
}
