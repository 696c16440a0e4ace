package scripting

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// HookLook is the global Lua function consulted by the look command. It is
// called as on_look(room_id, held) where held maps item names to true, and
// returns replacement text or nil.
const HookLook = "on_look"

// Manager owns one sandboxed LState per zone and exposes hook dispatch.
// An LState is single-threaded, so every call into a VM holds mu.
type Manager struct {
	mu        sync.Mutex
	states    map[string]*lua.LState
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil; instLimit >= 0 (0 = DefaultInstructionLimit).
// Postcondition: Returns a non-nil Manager with an empty zone map.
func NewManager(logger *zap.Logger, instLimit int) *Manager {
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{
		states:    make(map[string]*lua.LState),
		instLimit: instLimit,
		logger:    logger,
	}
}

// LoadZone creates a sandboxed VM for zoneID and executes every *.lua file at
// the root of fsys in lexicographic order. Loading a zone twice replaces the
// earlier VM.
//
// Precondition: zoneID must be non-empty.
// Postcondition: Zone VM is registered; returns error on read or Lua load failure.
func (m *Manager) LoadZone(zoneID string, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("scripting: reading scripts for %q: %w", zoneID, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".lua" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	L := NewSandboxedState()
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: reading %q for %q: %w", name, zoneID, err)
		}
		if err := m.exec(L, name, src); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", name, zoneID, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.states[zoneID]; ok {
		old.Close()
	}
	m.states[zoneID] = L
	m.mu.Unlock()

	m.logger.Debug("scripting: zone loaded",
		zap.String("zone", zoneID),
		zap.Int("files", len(names)),
	)
	return nil
}

func (m *Manager) exec(L *lua.LState, name string, src []byte) error {
	release := limitInstructions(L, m.instLimit)
	defer release()
	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// LookOverride asks the zone's on_look hook for replacement look text.
//
// Postcondition: Returns (text, true) only when the hook returned a non-empty string.
func (m *Manager) LookOverride(zoneID, roomID string, held []string) (string, bool) {
	ret := m.callHook(zoneID, HookLook, func(L *lua.LState) []lua.LValue {
		items := L.NewTable()
		for _, name := range held {
			items.RawSetString(name, lua.LTrue)
		}
		return []lua.LValue{lua.LString(roomID), items}
	})
	text, ok := ret.(lua.LString)
	if !ok || text == "" {
		return "", false
	}
	return string(text), true
}

// callHook calls the named Lua global function in zoneID's VM with the
// arguments built by args, which runs under the VM lock. Returns LNil if the
// zone has no VM or the hook is not defined. Lua runtime errors are logged at
// Warn level and never propagated.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) callHook(zoneID, hook string, args func(L *lua.LState) []lua.LValue) lua.LValue {
	m.mu.Lock()
	defer m.mu.Unlock()

	L, ok := m.states[zoneID]
	if !ok {
		m.logger.Info("scripting: no VM for zone",
			zap.String("zone", zoneID),
			zap.String("hook", hook),
		)
		return lua.LNil
	}

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil
	}

	release := limitInstructions(L, m.instLimit)
	defer release()

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args(L)...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("zone", zoneID),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

// Close releases every zone VM.
//
// Postcondition: No zones are loaded; subsequent hook calls return LNil.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, L := range m.states {
		L.Close()
		delete(m.states, id)
	}
}
