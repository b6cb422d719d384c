package notify_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alejandrodnm/metalbot/internal/adapters/notify"
	"github.com/alejandrodnm/metalbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestItemDone_Lines(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.ItemDone(domain.Outcome{
		Item:         "Acme Consolidated Holdings",
		TokenName:    "Acme Consolidated",
		TokenSymbol:  "ACH",
		TokenAddress: "0xaaa111",
		Kind:         domain.OutcomeSuccess,
	})
	c.ItemDone(domain.Outcome{
		Item:        "Borealis",
		TokenSymbol: "BORE",
		Kind:        domain.OutcomeFailure,
		Detail:      "submission rejected",
	})
	c.ItemDone(domain.Outcome{
		Item:        "Zephyr",
		TokenSymbol: "ZEPH",
		Kind:        domain.OutcomeGaveUp,
		Detail:      "still pending after 60 attempts",
	})

	out := buf.String()
	assert.Contains(t, out, "OK    Acme Consolidated Holdings → Acme Consolidated (ACH) @ 0xaaa111")
	assert.Contains(t, out, "FAIL  Borealis → BORE: submission rejected")
	assert.Contains(t, out, "WAIT  Zephyr → ZEPH sigue pendiente: still pending after 60 attempts")
}

func TestItemDone_SuccessWithoutAddress(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.ItemDone(domain.Outcome{Item: "Acme", TokenName: "Acme", TokenSymbol: "ACME", Kind: domain.OutcomeSuccess})
	assert.Contains(t, buf.String(), "@ -")
}

func TestBatchDone_AllSuccessSkipsDetailTable(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	started := time.Now().UTC()
	c.BatchDone(domain.BatchResult{
		RunID:      "run-1",
		Kind:       domain.BatchCreateTokens,
		StartedAt:  started,
		FinishedAt: started.Add(12 * time.Second),
		Outcomes: []domain.Outcome{
			{Item: "Acme", Kind: domain.OutcomeSuccess},
			{Item: "Zephyr", Kind: domain.OutcomeSuccess},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "batch create-tokens terminado: 2 items → ok:2 fail:0 wait:0")
	assert.NotContains(t, out, "Detail", "sin fallos no hay tabla de detalle")
}

func TestBatchDone_FailuresGetDetailTable(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	started := time.Now().UTC()
	c.BatchDone(domain.BatchResult{
		RunID:      "run-1",
		Kind:       domain.BatchInitLiquidity,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Outcomes: []domain.Outcome{
			{Item: "Acme", TokenSymbol: "ACME", Kind: domain.OutcomeSuccess},
			{Item: "Borealis", TokenSymbol: "BORE", Kind: domain.OutcomeFailure, Detail: "liquidity rejected"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ok:1 fail:1 wait:0")
	assert.Contains(t, out, "Borealis")
	assert.Contains(t, out, "liquidity rejected")
	assert.NotContains(t, out, "ACME", "los success no van a la tabla de detalle")
}

func TestPrintTokens(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintTokens([]domain.TokenRecord{
		{
			Name:               "Acme Consolidated",
			Symbol:             "AC",
			Address:            "0xaaa111bbb222ccc333",
			TotalSupply:        1000000000,
			RemainingAppSupply: 420000000,
			MerchantSupply:     100000000,
			Price:              0.00042,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Acme Consolidated")
	assert.Contains(t, out, "0xaaa111…c333", "la dirección sale acortada")
	assert.Contains(t, out, "$0.000420")
	assert.Contains(t, out, "1 tokens")
}

func TestPrintTokens_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintTokens(nil)
	assert.Contains(t, buf.String(), "No tokens found for this merchant.")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	c.PrintHistory([]domain.BatchSummary{
		{
			RunID:      "run-1",
			Kind:       domain.BatchCreateTokens,
			StartedAt:  started,
			FinishedAt: started.Add(45 * time.Second),
			Total:      3,
			Succeeded:  2,
			Failed:     1,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "2026-08-20 10:00")
	assert.Contains(t, out, "create-tokens")
	assert.Contains(t, out, "45s")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintHistory(nil)
	assert.Contains(t, buf.String(), "No batch history yet.")
}
