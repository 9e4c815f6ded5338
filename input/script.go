package input

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
)

const scriptResult = "__result"

// CompilePredicate compiles a tengo expression over the pointer state.
//
// The expression sees x and y (position, int), dx and dy (movement, float),
// pressed, interaction and inventory (bool), and must evaluate to a bool,
// e.g. "pressed && dx > 40".
func CompilePredicate(expr string) (PointerPredicate, error) {
	script := tengo.NewScript([]byte(scriptResult + " := (" + expr + ")"))
	_ = script.Add("x", 0)
	_ = script.Add("y", 0)
	_ = script.Add("dx", 0.0)
	_ = script.Add("dy", 0.0)
	_ = script.Add("pressed", false)
	_ = script.Add("interaction", false)
	_ = script.Add("inventory", false)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile gesture %q: %w", expr, err)
	}

	if err := runScript(compiled, expr); err != nil {
		return nil, err
	}
	if t := compiled.Get(scriptResult).ValueType(); t != "bool" {
		return nil, fmt.Errorf("input: gesture %q evaluates to %s, want bool", expr, t)
	}

	// Tables share predicates across clones; the compiled program is not
	// reentrant.
	var mu sync.Mutex
	return func(p PointerState) bool {
		mu.Lock()
		defer mu.Unlock()

		vars := map[string]any{
			"x":           p.Position.X,
			"y":           p.Position.Y,
			"dx":          p.Movement.X,
			"dy":          p.Movement.Y,
			"pressed":     p.Pressed,
			"interaction": p.InteractionRequested,
			"inventory":   p.InventoryRequested,
		}
		for name, v := range vars {
			if err := compiled.Set(name, v); err != nil {
				log.Printf("input: gesture %q: set %s: %v", expr, name, err)
				return false
			}
		}
		if err := runScript(compiled, expr); err != nil {
			log.Printf("%v", err)
			return false
		}
		return compiled.Get(scriptResult).Bool()
	}, nil
}

// runScript runs compiled once. The tengo VM panics on some runtime faults,
// integer division by zero among them; those come back as errors.
func runScript(compiled *tengo.Compiled, expr string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("input: run gesture %q: %v", expr, r)
		}
	}()
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("input: run gesture %q: %w", expr, err)
	}
	return nil
}
