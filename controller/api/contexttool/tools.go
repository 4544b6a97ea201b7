package contexttool

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// ToolHandler executes a named tool. Returning an error fails the enclosing
// RPC and counts against the service's circuit breaker.
type ToolHandler interface {
	Invoke(ctx context.Context, arguments map[string]string) (map[string][]byte, error)
}

// ToolHandlerFunc adapts a function to the ToolHandler interface.
type ToolHandlerFunc func(ctx context.Context, arguments map[string]string) (map[string][]byte, error)

// Invoke implements ToolHandler.
func (f ToolHandlerFunc) Invoke(ctx context.Context, arguments map[string]string) (map[string][]byte, error) {
	return f(ctx, arguments)
}

// ToolSet is the dispatch table from tool name to handler.
type ToolSet struct {
	mu       sync.RWMutex
	handlers map[string]ToolHandler
}

// NewToolSet creates a ToolSet preloaded with the built-in tools.
func NewToolSet() *ToolSet {
	ts := &ToolSet{handlers: make(map[string]ToolHandler)}
	ts.Register("compute_pricing", ToolHandlerFunc(computePricing))
	ts.Register("echo", ToolHandlerFunc(echoTool))
	return ts
}

// Register installs a handler under a name, replacing any previous handler.
func (ts *ToolSet) Register(name string, handler ToolHandler) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.handlers[name] = handler
}

// Names returns the registered tool names, sorted.
func (ts *ToolSet) Names() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	names := make([]string, 0, len(ts.handlers))
	for name := range ts.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ts *ToolSet) lookup(name string) (ToolHandler, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	handler, ok := ts.handlers[name]
	return handler, ok
}

// computePricing recommends a price from current stock: a base price of 100.0
// discounted by 0.1 per unit in stock.
func computePricing(_ context.Context, arguments map[string]string) (map[string][]byte, error) {
	raw, ok := arguments["stock_count"]
	if !ok {
		return nil, fmt.Errorf("missing stock_count argument")
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid stock_count %q: %w", raw, err)
	}

	price := 100.0 - 0.1*float64(stock)
	outputs := map[string][]byte{
		"recommended_price": []byte(strconv.FormatFloat(price, 'f', 1, 64)),
	}
	if sku, ok := arguments["sku"]; ok {
		outputs["sku"] = []byte(sku)
	}
	return outputs, nil
}

func echoTool(_ context.Context, arguments map[string]string) (map[string][]byte, error) {
	outputs := make(map[string][]byte, len(arguments))
	for k, v := range arguments {
		outputs[k] = []byte(v)
	}
	return outputs, nil
}
