package formula

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// formulaPattern is the entire grammar: a single uppercase function name
// over a flat argument list, anchored at both ends. Anything that does
// not match is displayed as-is rather than reported as malformed.
var formulaPattern = regexp.MustCompile(`^=([A-Z]+)\((.*)\)$`)

// ErrorValue is the diagnostic returned when evaluation hits a runtime
// fault. It is a displayable value, not an error; no fault ever crosses
// the Evaluate boundary.
const ErrorValue = "Error"

// MaxDepth bounds nested-formula recursion. A formula nested deeper than
// this fails closed with ErrorValue instead of exhausting the stack.
const MaxDepth = 32

// Evaluator evaluates formulas against rows. The function registry is
// injectable so callers can add functions without modifying the engine;
// NewEvaluator seeds it with the default table.
type Evaluator struct {
	functions map[string]Function
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewEvaluator creates an Evaluator with the default function table
// (SUM, AVG, MIN, MAX, COUNT, IF) registered.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Evaluator{
		functions: make(map[string]Function),
		logger:    logger,
	}
	for name, fn := range DefaultFunctions() {
		e.functions[name] = fn
	}
	return e
}

// Register adds or replaces a formula function. Names are uppercased to
// match the grammar, which only recognizes uppercase identifiers.
func (e *Evaluator) Register(name string, fn Function) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.functions[strings.ToUpper(name)] = fn
	e.logger.Info("Registered formula function", zap.String("name", strings.ToUpper(name)))
}

// RegisterFunctions registers multiple formula functions from a map.
func (e *Evaluator) RegisterFunctions(functionMap map[string]Function) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for name, fn := range functionMap {
		e.functions[strings.ToUpper(name)] = fn
		e.logger.Info("Registered formula function", zap.String("name", strings.ToUpper(name)))
	}
}

// HasFunction reports whether a function name is registered.
func (e *Evaluator) HasFunction(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.functions[strings.ToUpper(name)]
	return ok
}

// Evaluate resolves a cell value against a row. Non-formula input (nil,
// non-string, empty, or no leading "=") and formulas that do not match
// the grammar are returned unchanged; everything else yields either a
// computed value or a diagnostic string. The result is always a
// displayable value.
func (e *Evaluator) Evaluate(value any, row Row) any {
	return e.EvaluateResult(value, row).Value
}

// EvaluateResult is Evaluate with the result variant exposed, so callers
// that need to can distinguish pass-through from computed values and
// diagnostics.
func (e *Evaluator) EvaluateResult(value any, row Row) Result {
	return e.evaluate(value, row, 0)
}

func (e *Evaluator) evaluate(value any, row Row, depth int) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("Recovered from formula evaluation panic", zap.Any("panic", r))
			res = Result{Kind: ResultDiagnostic, Value: ErrorValue}
		}
	}()

	text, ok := value.(string)
	if !ok || text == "" || !strings.HasPrefix(text, "=") {
		return Result{Kind: ResultLiteral, Value: value}
	}
	if depth >= MaxDepth {
		return Result{Kind: ResultDiagnostic, Value: ErrorValue}
	}

	match := formulaPattern.FindStringSubmatch(text)
	if match == nil {
		// Malformed formulas degrade to literal display.
		return Result{Kind: ResultLiteral, Value: value}
	}
	name, argText := match[1], match[2]

	e.mu.RLock()
	fn, registered := e.functions[name]
	e.mu.RUnlock()
	if !registered {
		return Result{Kind: ResultDiagnostic, Value: fmt.Sprintf("Unknown function: %s", name)}
	}

	tokens := splitArguments(argText)
	args := make([]any, len(tokens))
	for i, token := range tokens {
		args[i] = e.resolveArgument(token, row, depth)
	}

	out, err := fn(row, args)
	if err != nil {
		e.logger.Debug("Formula function failed",
			zap.String("function", name),
			zap.Error(err))
		return Result{Kind: ResultDiagnostic, Value: ErrorValue}
	}
	return Result{Kind: ResultComputed, Value: out}
}

// resolveArgument classifies one argument token. Field references win
// over nested formulas, which win over literal text.
func (e *Evaluator) resolveArgument(token string, row Row, depth int) any {
	if v, ok := row[token]; ok {
		return v
	}
	if strings.HasPrefix(token, "=") {
		return e.evaluate(token, row, depth+1).Value
	}
	return token
}
