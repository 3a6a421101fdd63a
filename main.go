package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/asaidimu/go-formula/core/formula"
	"github.com/asaidimu/go-formula/core/grid"
)

// Demo: a small order grid with two formula columns and a diagnostic
// subscription, the way a grid front end would drive the engine.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	processor, err := grid.NewProcessor(formula.NewEvaluator(logger), logger)
	if err != nil {
		log.Fatalf("failed to initialize grid processor: %v", err)
	}

	columns := []grid.Column{
		{Name: "item", Type: grid.ColumnTypeText},
		{Name: "price", Type: grid.ColumnTypeNumber},
		{Name: "qty", Type: grid.ColumnTypeNumber},
		{Name: "tax", Type: grid.ColumnTypeNumber},
		{Name: "total", Type: grid.ColumnTypeFormula, Formula: "=SUM(price,tax)"},
		{Name: "status", Type: grid.ColumnTypeFormula, Formula: "=IF(qty>0,in stock,sold out)"},
	}

	for _, issue := range processor.ValidateColumns(columns) {
		logger.Warn("Column validation issue",
			zap.String("code", issue.Code),
			zap.String("column", issue.Column),
			zap.String("message", issue.Message))
	}

	subID := processor.Subscribe(grid.CellDiagnostic, func(ctx context.Context, event grid.GridEvent) error {
		logger.Warn("Cell produced a diagnostic value",
			zap.Stringp("column", event.Column),
			zap.Any("value", event.Value))
		return nil
	})
	defer processor.Unsubscribe(subID)

	rows := []formula.Row{
		{"item": "notebook", "price": 4.50, "qty": 12, "tax": 0.45},
		{"item": "stapler", "price": 12.00, "qty": 0, "tax": 1.20},
		{"item": "ink", "price": 22.90, "qty": 3, "tax": 2.29},
	}

	computed := processor.ComputeRows(rows, columns)

	fmt.Printf("%-10s %8s %5s %8s %10s\n", "item", "price", "qty", "total", "status")
	for _, row := range computed {
		fmt.Printf("%-10s %8.2f %5v %8.2f %10s\n",
			row["item"], row["price"], row["qty"], row["total"], row["status"])
	}
}
