package notify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alejandrodnm/metalbot/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Notifier. Narra el batch línea a línea para que
// un operador mirando la consola reconstruya el outcome completo sin
// tooling estructurado.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// ItemDone imprime una línea por item terminado.
func (c *Console) ItemDone(o domain.Outcome) {
	ts := time.Now().Format("15:04:05")
	switch o.Kind {
	case domain.OutcomeSuccess:
		addr := o.TokenAddress
		if addr == "" {
			addr = "-"
		}
		fmt.Fprintf(c.out, "[%s] OK    %s → %s (%s) @ %s\n", ts, o.Item, o.TokenName, o.TokenSymbol, addr)
	case domain.OutcomeGaveUp:
		fmt.Fprintf(c.out, "[%s] WAIT  %s → %s sigue pendiente: %s\n", ts, o.Item, o.TokenSymbol, o.Detail)
	default:
		fmt.Fprintf(c.out, "[%s] FAIL  %s → %s: %s\n", ts, o.Item, o.TokenSymbol, o.Detail)
	}
}

// BatchDone imprime la línea de resumen del batch y, si hubo items no
// exitosos, una tabla con el detalle.
func (c *Console) BatchDone(r domain.BatchResult) {
	ok, failed, gaveUp := r.Tally()
	fmt.Fprintf(c.out, "[%s] batch %s terminado: %d items → ok:%d fail:%d wait:%d (%s)\n",
		time.Now().Format("15:04:05"), r.Kind, len(r.Outcomes), ok, failed, gaveUp,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Second))

	if failed == 0 && gaveUp == 0 {
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Item", "Symbol", "Result", "Detail")
	for _, o := range r.Outcomes {
		if o.Kind == domain.OutcomeSuccess {
			continue
		}
		table.Append(o.Item, o.TokenSymbol, o.Kind.String(), o.Detail)
	}
	table.Render()
}

// PrintTokens imprime la tabla de tokens del merchant (comando -list).
func (c *Console) PrintTokens(tokens []domain.TokenRecord) {
	if len(tokens) == 0 {
		fmt.Fprintln(c.out, "  No tokens found for this merchant.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Name", "Symbol", "Address", "Total", "App left", "Merchant", "Price")
	for _, t := range tokens {
		table.Append(
			t.Name,
			t.Symbol,
			shortAddr(t.Address),
			fmt.Sprintf("%d", t.TotalSupply),
			fmt.Sprintf("%d", t.RemainingAppSupply),
			fmt.Sprintf("%d", t.MerchantSupply),
			fmt.Sprintf("$%.6f", t.Price),
		)
	}
	table.Render()
	fmt.Fprintf(c.out, "  %d tokens\n", len(tokens))
}

// PrintHistory imprime el histórico de ejecuciones (comando -history).
func (c *Console) PrintHistory(rows []domain.BatchSummary) {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "  No batch history yet.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Started", "Kind", "Total", "OK", "Fail", "Wait", "Duration")
	for _, r := range rows {
		table.Append(
			r.StartedAt.Format("2006-01-02 15:04"),
			string(r.Kind),
			fmt.Sprintf("%d", r.Total),
			fmt.Sprintf("%d", r.Succeeded),
			fmt.Sprintf("%d", r.Failed),
			fmt.Sprintf("%d", r.GaveUp),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String(),
		)
	}
	table.Render()
}

// shortAddr acorta una dirección on-chain para la tabla.
func shortAddr(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}
