package lower

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/kindling"
)

type builtin func(c *fnCtx, call *ast.StaticFunctionCall, args []kindling.Argument) (kindling.Argument, error)

// builtins are used only when no user definition with the same name resolves.
var builtins = map[string]builtin{
	"print": func(c *fnCtx, call *ast.StaticFunctionCall, args []kindling.Argument) (kindling.Argument, error) {
		c.emit(kindling.PlayerAction("SendMessage", "AllPlayers", args...))
		return nil, nil
	},
	"wait": func(c *fnCtx, call *ast.StaticFunctionCall, args []kindling.Argument) (kindling.Argument, error) {
		if len(args) != 1 {
			return nil, c.errorf(diag.LowerUnsupported, call.Pos, "wait takes exactly one argument, got %d", len(args))
		}
		c.emit(kindling.Control("Wait", "", args...))
		return nil, nil
	},
}
