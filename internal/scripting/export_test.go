package scripting

import lua "github.com/yuin/gopher-lua"

// CallHook exposes hook dispatch with fixed arguments to the external tests.
func (m *Manager) CallHook(zoneID, hook string, args ...lua.LValue) lua.LValue {
	return m.callHook(zoneID, hook, func(*lua.LState) []lua.LValue { return args })
}
