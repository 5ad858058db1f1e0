//go:build !((darwin && (amd64 || arm64)) || (freebsd && (amd64 || arm64)) || (linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)) || (windows && (386 || amd64 || arm64)))

package db

import (
	"fmt"

	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
)

// DriverName is the database/sql driver the functions are registered with.
const DriverName = "sqlite3"

func init() {
	fns := Functions()
	sqlite3.AutoExtension(func(c *sqlite3.Conn) error {
		for _, fn := range fns {
			err := c.CreateFunction(fn.Name, fn.Args, sqlite3.DETERMINISTIC, func(ctx sqlite3.Context, args ...sqlite3.Value) {
				vals := make([]any, len(args))
				for i, arg := range args {
					vals[i] = value(arg)
				}
				res, err := fn.invoke(vals)
				if err != nil {
					ctx.ResultError(err)
					return
				}
				switch res := res.(type) {
				case nil:
					ctx.ResultNull()
				case int64:
					ctx.ResultInt64(res)
				case string:
					ctx.ResultText(res)
				default:
					ctx.ResultError(fmt.Errorf("%s: unsupported result type %T", fn.Name, res))
				}
			})
			if err != nil {
				return fmt.Errorf("registering %s: %w", fn.Name, err)
			}
		}
		return nil
	})
}

func value(v sqlite3.Value) any {
	switch v.Type() {
	case sqlite3.NULL:
		return nil
	case sqlite3.INTEGER:
		return v.Int64()
	case sqlite3.FLOAT:
		return v.Float()
	case sqlite3.BLOB:
		return v.Blob(nil)
	default:
		return v.Text()
	}
}
