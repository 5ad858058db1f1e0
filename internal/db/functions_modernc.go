//go:build (darwin && (amd64 || arm64)) || (freebsd && (amd64 || arm64)) || (linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)) || (windows && (386 || amd64 || arm64))

package db

import (
	"database/sql/driver"

	"modernc.org/sqlite"
)

// DriverName is the database/sql driver the functions are registered with.
const DriverName = "sqlite"

func init() {
	for _, fn := range Functions() {
		sqlite.MustRegisterDeterministicScalarFunction(
			fn.Name,
			int32(fn.Args),
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				vals := make([]any, len(args))
				for i, arg := range args {
					vals[i] = arg
				}
				return fn.invoke(vals)
			},
		)
	}
}
