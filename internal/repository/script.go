package repository

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Error reply prefixes returned by the Lua scripts.
const (
	scriptErrNoArea     = "NOAREA"
	scriptErrNoRoom     = "NOROOM"
	scriptErrRoomTaken  = "ROOMTAKEN"
	scriptErrAreaExists = "AREAEXISTS"
	scriptErrCharExists = "CHEXISTS"
)

// hashArgs flattens fields into name/value script arguments, sorted by name.
func hashArgs(fields map[string]any) []any {
	names := maps.Keys(fields)
	slices.Sort(names)

	args := make([]any, 0, 2*len(names))
	for _, name := range names {
		args = append(args, name, fields[name])
	}

	return args
}

func isScriptError(err error, prefix string) bool {
	return strings.HasPrefix(err.Error(), prefix)
}
