package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/viant/sqlite-fuzz/fuzz"
	sqlite "modernc.org/sqlite"
)

var registerOnce sync.Once

// RegisterFuzzFunctions registers gram, ratio and partial_ratio with the
// driver so they are available on new connections opened after this call.
// Registration happens once per process; later calls are no-ops.
// Note: existing open connections will not see new functions.
func RegisterFuzzFunctions() {
	registerOnce.Do(func() {
		for _, m := range fuzz.Methods() {
			if err := sqlite.RegisterDeterministicScalarFunction(string(m), 2, scalarFunc(m)); err != nil {
				log.Debug().Err(err).Str("function", string(m)).Msg("sql function registration skipped")
			}
		}
	})
}

// scalarFunc adapts a scoring method to the driver's scalar function shape.
// A NULL argument yields NULL; the scorer only sees two present values.
func scalarFunc(m fuzz.Method) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	name := string(m)
	score := m.Scorer()
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("engine: %s: expected 2 arguments, got %d", name, len(args))
		}
		a, ok, err := asText(name, args[0])
		if err != nil || !ok {
			return nil, err
		}
		b, ok, err := asText(name, args[1])
		if err != nil || !ok {
			return nil, err
		}
		return score(a, b), nil
	}
}

// asText reports ok=false for NULL.
func asText(name string, arg driver.Value) (string, bool, error) {
	switch v := arg.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("engine: %s: unsupported argument type %T; want TEXT", name, arg)
	}
}
