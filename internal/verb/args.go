package verb

import (
	"regexp"

	"tread/internal/errors"
	"tread/internal/log"
)

// groupPattern matches `{name}` and `{name:format}` placeholders
var groupPattern = regexp.MustCompile(`\{([^{}:]+)(?::([^{}:]+))?\}`)

// compileArgsParser turns the declared arguments of an invocation into an
// anchored regular expression with one named group per placeholder.
func compileArgsParser(inv Invocation) (*regexp.Regexp, error) {
	pattern := "^" + groupPattern.ReplaceAllString(inv.Args, `(?P<${1}>.+)`) + "$"
	log.Debugf("args parser of %q: %s", inv.String(), pattern)
	parser, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("invalid verb invocation", inv.String(), errors.InvalidVerbInvocation, err)
	}
	return parser, nil
}
