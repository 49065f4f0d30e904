package verb

import (
	"fmt"
	"strings"

	"tread/internal/log"
)

// ExecTokens builds the argument vector of the program to launch. The
// pattern is split before replacement so a value holding spaces stays a
// single token.
func (v *Verb) ExecTokens(file, args string) []string {
	m := v.replacementMap(file, args, false)
	fields := strings.Fields(v.Execution)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, expandGroups(field, m))
	}
	return tokens
}

// ShellExecString builds a command line for a shell, with escaped paths.
// Tokens are kept as written, trailing slashes included.
func (v *Verb) ShellExecString(file, args string) string {
	m := v.replacementMap(file, args, true)
	return strings.Join(strings.Fields(expandGroups(v.Execution, m)), " ")
}

func expandGroups(s string, m map[string]string) string {
	matches := groupPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var sb strings.Builder
	last := 0
	for _, loc := range matches {
		sb.WriteString(s[last:loc[0]])
		name := s[loc[2]:loc[3]]
		format := ""
		if loc[4] >= 0 {
			format = s[loc[4]:loc[5]]
		}
		sb.WriteString(replaceGroup(name, format, m))
		last = loc[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// replaceGroup computes the replacement of one placeholder. Unknown names and
// formats are replaced by visible markers instead of failing the expansion.
func replaceGroup(name, format string, m map[string]string) string {
	value, ok := m[name]
	if !ok {
		return "{" + name + "}"
	}
	switch format {
	case "":
		return value
	case "path-from-directory":
		return resolvePath(FromDirectory, value, m)
	case "path-from-parent":
		return resolvePath(FromParent, value, m)
	default:
		log.Warnf("invalid format %q for {%s}", format, name)
		return fmt.Sprintf("invalid format: %q", format)
	}
}
