package grid

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asaidimu/go-formula/core/formula"
)

// Processor fills formula columns over caller-supplied rows. Input rows
// are never mutated; computed values land on copies. Computation is
// synchronous and each call is independent, so identical inputs always
// yield identical outputs.
type Processor struct {
	evaluator     *formula.Evaluator
	logger        *zap.Logger
	bus           *events.TypedEventBus[GridEvent]
	subscriptions map[string]*SubscriptionInfo
	subMu         sync.RWMutex
}

// NewProcessor creates a Processor around an evaluator. A nil evaluator
// gets a fresh one with the default function table; a nil logger is
// replaced with a no-op logger.
func NewProcessor(evaluator *formula.Evaluator, logger *zap.Logger) (*Processor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if evaluator == nil {
		evaluator = formula.NewEvaluator(logger)
	}

	bus, err := events.NewTypedEventBus[GridEvent](events.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("could not initialize event bus: %w", err)
	}

	return &Processor{
		evaluator:     evaluator,
		logger:        logger,
		bus:           bus,
		subscriptions: make(map[string]*SubscriptionInfo),
	}, nil
}

// Evaluator returns the processor's evaluator, e.g. to register custom
// formula functions.
func (p *Processor) Evaluator() *formula.Evaluator {
	return p.evaluator
}

func (p *Processor) emitEvent(event GridEvent) {
	if p.bus != nil {
		p.bus.Emit(string(event.Type), event)
	}
}

// ComputeRows evaluates every formula column for every row and returns
// the filled copies. It emits compute:start and compute:success around
// the batch and cell:diagnostic for each cell whose formula evaluates to
// a diagnostic value.
func (p *Processor) ComputeRows(rows []formula.Row, columns []Column) []formula.Row {
	startTime := time.Now()
	p.emitEvent(createEvent(ComputeStart, nil, len(rows), nil, nil, startTime))

	result := make([]formula.Row, len(rows))
	for i, row := range rows {
		result[i] = p.computeRow(row, columns)
	}

	p.emitEvent(createEvent(ComputeSuccess, nil, len(rows), nil, nil, startTime))
	p.logger.Debug("Computed formula columns",
		zap.Int("rows", len(result)),
		zap.Int("columns", len(columns)))
	return result
}

// ComputeRow evaluates the formula columns of a single row and returns
// the filled copy.
func (p *Processor) ComputeRow(row formula.Row, columns []Column) formula.Row {
	return p.computeRow(row, columns)
}

// computeRow evaluates each formula column against the original row, not
// the partially filled copy: formula columns do not see each other's
// results (there is no recalculation graph).
func (p *Processor) computeRow(row formula.Row, columns []Column) formula.Row {
	out := make(formula.Row, len(row)+len(columns))
	maps.Copy(out, row)

	for _, column := range columns {
		if !column.IsFormula() {
			continue
		}
		result := p.evaluator.EvaluateResult(column.Formula, row)
		out[column.Name] = result.Value

		if result.Kind == formula.ResultDiagnostic {
			name := column.Name
			p.emitEvent(createEvent(CellDiagnostic, &name, 1, result.Value, nil, time.Time{}))
			p.logger.Warn("Formula cell evaluated to a diagnostic",
				zap.String("column", column.Name),
				zap.Any("value", result.Value))
		}
	}
	return out
}

// Subscribe registers a callback for a grid event type. It returns a
// unique ID that can be used to unsubscribe later.
func (p *Processor) Subscribe(event GridEventType, callback EventCallback) string {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	unsubscribe := p.bus.Subscribe(string(event), callback)
	id := uuid.New().String()

	p.subscriptions[id] = &SubscriptionInfo{
		ID:          id,
		Event:       event,
		Unsubscribe: unsubscribe,
	}
	return id
}

// Unsubscribe removes a subscription by its ID.
func (p *Processor) Unsubscribe(id string) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	if info, ok := p.subscriptions[id]; ok {
		info.Unsubscribe()
		delete(p.subscriptions, id)
	}
}

// Subscriptions returns all currently active subscriptions.
func (p *Processor) Subscriptions() []SubscriptionInfo {
	p.subMu.RLock()
	defer p.subMu.RUnlock()

	subs := make([]SubscriptionInfo, 0, len(p.subscriptions))
	for _, sub := range p.subscriptions {
		subs = append(subs, *sub)
	}
	return subs
}
