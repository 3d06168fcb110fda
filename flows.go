package main

import (
	"fmt"
	"strconv"
	"strings"

	"flowfinance/finance"
)

// splitPair parses "x:amount".
func splitPair(s string) (float64, float64, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q: expected x:amount", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	return x, amount, nil
}

func parseDayFlows(values []string) ([]finance.DayFlow, error) {
	flows := make([]finance.DayFlow, 0, len(values))
	for _, v := range values {
		day, amount, err := splitPair(v)
		if err != nil {
			return nil, fmt.Errorf("flow %w", err)
		}
		flows = append(flows, finance.DayFlow{Day: day, Amount: amount})
	}
	return flows, nil
}

// parsePeriodFlows accepts "period:amount" or a bare amount, which takes the next period
// starting at 1.
func parsePeriodFlows(values []string) ([]finance.PeriodFlow, error) {
	flows := make([]finance.PeriodFlow, 0, len(values))
	for i, v := range values {
		if !strings.Contains(v, ":") {
			amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("flow %q: %w", v, err)
			}
			flows = append(flows, finance.PeriodFlow{Period: i + 1, Amount: amount})
			continue
		}

		left, right, _ := strings.Cut(v, ":")
		period, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return nil, fmt.Errorf("flow %q: %w", v, err)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
		if err != nil {
			return nil, fmt.Errorf("flow %q: %w", v, err)
		}
		flows = append(flows, finance.PeriodFlow{Period: period, Amount: amount})
	}
	return flows, nil
}

func parseTransactions(values []string) ([]finance.Transaction, error) {
	txs := make([]finance.Transaction, 0, len(values))
	for _, v := range values {
		days, amount, err := splitPair(v)
		if err != nil {
			return nil, fmt.Errorf("transaction %w", err)
		}
		txs = append(txs, finance.Transaction{Days: days, Amount: amount})
	}
	return txs, nil
}
