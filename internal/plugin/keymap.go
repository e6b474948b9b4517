// Package plugin runs user-supplied Lua scripts. The only hook today is
// the keymap script, which returns a table of key-chord to action-name
// bindings layered over the built-in defaults.
package plugin

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Libraries opened for keymap scripts. Base and table only; keymap
// scripts have no business doing I/O or spawning processes.
var keymapLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
}

// LoadKeymap evaluates the script at path and returns its bindings. The
// script must return a table whose keys are key-chord names ("escape",
// "ctrl+q") and whose values are action names ("quit", "remove"). A
// missing file yields an empty map, not an error.
func LoadKeymap(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range keymapLibs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return nil, &ScriptError{Path: path, Err: fmt.Errorf("opening %s library: %w", lib.name, err)}
		}
	}

	if err := L.DoFile(path); err != nil {
		return nil, &ScriptError{Path: path, Err: err}
	}

	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ScriptError{
			Path: path,
			Err:  fmt.Errorf("keymap script must return a table, got %s", ret.Type()),
		}
	}

	bindings := make(map[string]string)
	var entryErr error
	tbl.ForEach(func(k, v lua.LValue) {
		ks, kok := k.(lua.LString)
		vs, vok := v.(lua.LString)
		if !kok || !vok {
			entryErr = fmt.Errorf("keymap entries must map string to string, got %s = %s", k.Type(), v.Type())
			return
		}
		bindings[string(ks)] = string(vs)
	})
	if entryErr != nil {
		return nil, &ScriptError{Path: path, Err: entryErr}
	}

	return bindings, nil
}
