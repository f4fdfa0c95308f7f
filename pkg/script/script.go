package script

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"

	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/metrics"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// EvalBudget bounds every entry into the interpreter, including queued
// timer callbacks. Author scripts that loop forever are interrupted.
const EvalBudget = time.Second

type timerJob struct {
	id    int64
	delay int64
	fn    goja.Callable
}

// Sandbox is a single-goroutine JavaScript interpreter with no module
// system, no I/O and no real timers. Globals persist across Run calls so
// helper libraries can be loaded once and used by later evaluations.
type Sandbox struct {
	vm     *goja.Runtime
	logger zerolog.Logger
	timers []timerJob
	nextID int64
}

// New builds a hardened interpreter. Callers must not share a Sandbox
// between goroutines.
func New() *Sandbox {
	s := &Sandbox{
		vm:     goja.New(),
		logger: log.WithComponent("script"),
	}
	s.installGlobals()
	return s
}

func (s *Sandbox) installGlobals() {
	vm := s.vm

	_ = vm.Set("require", func(call goja.FunctionCall) goja.Value {
		panic(vm.NewTypeError("imports are not supported in challenge scripts"))
	})

	console := vm.NewObject()
	_ = console.Set("log", s.consoleFunc(zerolog.DebugLevel))
	_ = console.Set("warn", s.consoleFunc(zerolog.WarnLevel))
	_ = console.Set("error", s.consoleFunc(zerolog.ErrorLevel))
	_ = vm.Set("console", console)

	crypto := vm.NewObject()
	_ = crypto.Set("hmacSha256Hex", func(call goja.FunctionCall) goja.Value {
		mac := hmac.New(sha256.New, []byte(call.Argument(0).String()))
		mac.Write([]byte(call.Argument(1).String()))
		return vm.ToValue(hex.EncodeToString(mac.Sum(nil)))
	})
	_ = crypto.Set("sha256Hex", func(call goja.FunctionCall) goja.Value {
		sum := sha256.Sum256([]byte(call.Argument(0).String()))
		return vm.ToValue(hex.EncodeToString(sum[:]))
	})
	_ = crypto.Set("md5Hex", func(call goja.FunctionCall) goja.Value {
		sum := md5.Sum([]byte(call.Argument(0).String()))
		return vm.ToValue(hex.EncodeToString(sum[:]))
	})
	_ = vm.Set("crypto", crypto)

	_ = vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(vm.NewTypeError("setTimeout expects a function as its first argument"))
		}
		s.nextID++
		s.timers = append(s.timers, timerJob{
			id:    s.nextID,
			delay: call.Argument(1).ToInteger(),
			fn:    fn,
		})
		return vm.ToValue(s.nextID)
	})
	_ = vm.Set("clearTimeout", func(call goja.FunctionCall) goja.Value {
		id := call.Argument(0).ToInteger()
		for i, job := range s.timers {
			if job.id == id {
				s.timers = append(s.timers[:i], s.timers[i+1:]...)
				break
			}
		}
		return goja.Undefined()
	})
}

func (s *Sandbox) consoleFunc(level zerolog.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		s.logger.WithLevel(level).Strs("args", parts).Msg("console output")
		return goja.Undefined()
	}
}

// Run evaluates a script body and flushes any timer callbacks it queued,
// all under a single evaluation budget.
func (s *Sandbox) Run(src string) error {
	_, err := s.guard("run script", func() (goja.Value, error) {
		v, err := s.vm.RunString(src)
		if err != nil {
			return nil, err
		}
		if err := s.flushTimers(); err != nil {
			return nil, err
		}
		return v, nil
	})
	return err
}

// EvalString evaluates an expression and returns its string form.
// Undefined and null evaluate to the empty string.
func (s *Sandbox) EvalString(expr string) (string, error) {
	v, err := s.guard("evaluate expression", func() (goja.Value, error) {
		return s.vm.RunString(expr)
	})
	if err != nil {
		return "", err
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return "", nil
	}
	return v.String(), nil
}

func (s *Sandbox) call(op string, fn goja.Callable, args ...goja.Value) (goja.Value, error) {
	return s.guard(op, func() (goja.Value, error) {
		v, err := fn(goja.Undefined(), args...)
		if err != nil {
			return nil, err
		}
		if err := s.flushTimers(); err != nil {
			return nil, err
		}
		return v, nil
	})
}

// flushTimers runs queued setTimeout callbacks in delay order. Callbacks
// may queue further callbacks; the surrounding budget bounds the total.
func (s *Sandbox) flushTimers() error {
	for len(s.timers) > 0 {
		sort.SliceStable(s.timers, func(i, j int) bool {
			return s.timers[i].delay < s.timers[j].delay
		})
		job := s.timers[0]
		s.timers = s.timers[1:]
		if _, err := job.fn(goja.Undefined()); err != nil {
			return err
		}
	}
	return nil
}

// guard wraps one entry into the interpreter with the evaluation budget
// and converts interpreter failures into script errors.
func (s *Sandbox) guard(op string, fn func() (goja.Value, error)) (goja.Value, error) {
	s.vm.ClearInterrupt()
	timer := time.AfterFunc(EvalBudget, func() {
		s.vm.Interrupt("evaluation budget exceeded")
	})
	v, err := fn()
	timer.Stop()
	s.vm.ClearInterrupt()
	if err != nil {
		return nil, s.scriptError(op, err)
	}
	return v, nil
}

func (s *Sandbox) scriptError(op string, err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		metrics.ScriptErrors.WithLabelValues("timeout").Inc()
		return types.NewScriptError("%s: script exceeded the %s evaluation budget", op, EvalBudget)
	}
	var exception *goja.Exception
	if errors.As(err, &exception) {
		metrics.ScriptErrors.WithLabelValues("exception").Inc()
		return types.NewScriptError("%s: %s", op, exception.Value().String())
	}
	metrics.ScriptErrors.WithLabelValues("parse").Inc()
	return types.NewScriptError("%s: %v", op, err)
}

// CheckFlag evaluates a flag validation script against a submitted flag.
// The script must call setFlagValidationFunction exactly once with a
// function taking the submitted flag and returning a boolean. A fresh
// interpreter is used per call so submissions cannot observe each other.
func CheckFlag(source, submitted string) (bool, error) {
	s := New()
	var validator goja.Callable
	_ = s.vm.Set("setFlagValidationFunction", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(s.vm.NewTypeError("setFlagValidationFunction expects a function as its first argument"))
		}
		validator = fn
		return goja.Undefined()
	})

	if err := s.Run(source); err != nil {
		return false, err
	}
	if validator == nil {
		metrics.ScriptErrors.WithLabelValues("contract").Inc()
		return false, types.NewScriptError("flag validation function not set")
	}

	v, err := s.call("validate flag", validator, s.vm.ToValue(submitted))
	if err != nil {
		return false, err
	}
	result, ok := v.Export().(bool)
	if !ok {
		metrics.ScriptErrors.WithLabelValues("contract").Inc()
		return false, types.NewScriptError("flag validation function did not return a boolean")
	}
	return result, nil
}

// Points evaluates a scoring script. The script must call setPointsFn with
// a function taking (metadata, totalSolves, solveIndex, totalCompetitors)
// and returning an integer point value.
func Points(source string, metadata map[string]interface{}, totalSolves, solveIndex, totalCompetitors uint32) (int64, error) {
	s := New()
	var pointsFn goja.Callable
	_ = s.vm.Set("setPointsFn", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(s.vm.NewTypeError("setPointsFn expects a function as its first argument"))
		}
		pointsFn = fn
		return goja.Undefined()
	})

	if err := s.Run(source); err != nil {
		return 0, err
	}
	if pointsFn == nil {
		metrics.ScriptErrors.WithLabelValues("contract").Inc()
		return 0, types.NewScriptError("points function not set")
	}

	v, err := s.call("calculate points", pointsFn,
		s.vm.ToValue(metadata),
		s.vm.ToValue(totalSolves),
		s.vm.ToValue(solveIndex),
		s.vm.ToValue(totalCompetitors),
	)
	if err != nil {
		return 0, err
	}
	switch n := v.Export().(type) {
	case int64:
		return n, nil
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), nil
		}
	}
	metrics.ScriptErrors.WithLabelValues("contract").Inc()
	return 0, types.NewScriptError("points function did not return an integer")
}
