package stage

import (
	"context"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	sandboxTimeoutViolation     = "sandbox timeout"
	sandboxInstructionViolation = "sandbox instruction limit"

	defaultLuaTimeoutMs        = 1000
	defaultLuaInstructionLimit = 2000000
)

type sandboxConfig struct {
	timeoutMs        int
	instructionLimit int
}

func sandboxFromMeta(meta *Meta) sandboxConfig {
	cfg := sandboxConfig{
		timeoutMs:        defaultLuaTimeoutMs,
		instructionLimit: defaultLuaInstructionLimit,
	}
	if meta == nil || meta.Cfg == nil {
		return cfg
	}
	sb := meta.Cfg.Sandbox
	if sb.HasTimeout && sb.TimeoutMs >= 0 {
		cfg.timeoutMs = sb.TimeoutMs
	}
	if sb.HasLimit && sb.InstructionLimit >= 0 {
		cfg.instructionLimit = sb.InstructionLimit
	}
	return cfg
}

// newSandboxState creates a Lua state with only the base, string, table
// and math libraries opened. Nothing with filesystem or process access
// ever reaches filter scripts.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// instructionLimitWouldTrip is a static pre-check: scripts with looping
// constructs are assumed expensive, so a small limit rejects them before
// any execution.
func instructionLimitWouldTrip(code string, instructionLimit int) bool {
	if instructionLimit <= 0 {
		return false
	}
	cost := len(code) * 10
	lower := strings.ToLower(code)
	if strings.Contains(lower, "while ") || strings.Contains(lower, "repeat") || strings.Contains(lower, "for ") {
		cost += 1000000
	}
	return cost > instructionLimit
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if err == context.DeadlineExceeded {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}

// runFilterScript evaluates code in a fresh sandboxed state with the
// given string globals and reports whether the script's first return
// value is truthy. A non-empty violation string means a sandbox bound was
// hit; it is not a script error.
func runFilterScript(cfg sandboxConfig, globals map[string]string, code string) (bool, string, error) {
	if instructionLimitWouldTrip(code, cfg.instructionLimit) {
		return false, sandboxInstructionViolation, nil
	}

	L := newSandboxState()
	defer L.Close()

	if cfg.timeoutMs > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.timeoutMs)*time.Millisecond)
		defer cancel()
		L.SetContext(ctx)
	}

	for k, v := range globals {
		L.SetGlobal(k, lua.LString(v))
	}

	fn, err := L.LoadString(code)
	if err != nil {
		return false, "", err
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return false, sandboxTimeoutViolation, nil
		}
		return false, "", err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret != lua.LNil && ret != lua.LFalse, "", nil
}
