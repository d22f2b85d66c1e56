package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ventaspos/ledger-api/internal/domain/payment"
)

func TestDecode_TaggedClauses(t *testing.T) {
	components := payment.Decode("CASH|Efectivo: $50.00, CARD|Visa: $25.50", 75.50)

	require.Len(t, components, 2)
	assert.Equal(t, payment.Component{Type: payment.TypeCash, Method: "Efectivo", Amount: 50.00}, components[0])
	assert.Equal(t, payment.Component{Type: payment.TypeCard, Method: "Visa", Amount: 25.50}, components[1])
}

func TestDecode_LegacyUntaggedClause(t *testing.T) {
	// Legacy snapshots carry no type tag; the type is inferred from the label.
	components := payment.Decode("Efectivo: $100.00", 100.00)

	require.Len(t, components, 1)
	assert.Equal(t, payment.TypeCash, components[0].Type)
	assert.Equal(t, "Efectivo", components[0].Method)
	assert.Equal(t, 100.00, components[0].Amount)
	assert.Equal(t, "Efectivo", components[0].Type.Label())
}

func TestDecode_ThousandSeparators(t *testing.T) {
	components := payment.Decode("TRANSFER|Banco Galicia: $1,250,000.75", 0)

	require.Len(t, components, 1)
	assert.Equal(t, 1250000.75, components[0].Amount)
}

func TestDecode_EmptySnapshot(t *testing.T) {
	assert.Empty(t, payment.Decode("", 100))
	assert.Empty(t, payment.Decode("   ", 100))
}

func TestDecode_MalformedAmountDiscardsClause(t *testing.T) {
	// A clause whose amount does not parse is dropped; the rest survives.
	components := payment.Decode("CASH|Efectivo: abc, CARD|Visa: $10.00", 10)

	require.Len(t, components, 1)
	assert.Equal(t, "Visa", components[0].Method)
}

func TestDecode_NaNAmountDiscardsClause(t *testing.T) {
	components := payment.Decode("CASH|Efectivo: $NaN", 50)
	assert.Empty(t, components)
}

func TestDecode_SoleClauseWithoutAmountFallsBackToTotal(t *testing.T) {
	components := payment.Decode("Efectivo", 80.00)

	require.Len(t, components, 1)
	assert.Equal(t, 80.00, components[0].Amount)
}

func TestDecode_MixedClauseWithoutAmountContributesZero(t *testing.T) {
	// When an amountless clause coexists with amount-bearing clauses, it gets
	// zero instead of the sale total, so the total is never counted twice.
	components := payment.Decode("CASH|Efectivo: $60.00, Transferencia", 100.00)

	require.Len(t, components, 2)
	assert.Equal(t, 60.00, components[0].Amount)
	assert.Equal(t, 0.00, components[1].Amount)
	assert.Equal(t, payment.TypeTransfer, components[1].Type)
}

func TestInferType(t *testing.T) {
	tests := []struct {
		label string
		want  payment.TypeKey
	}{
		{"Efectivo", payment.TypeCash},
		{"Caja chica", payment.TypeCash},
		{"Tarjeta de credito", payment.TypeCard},
		{"POS Mostrador", payment.TypeCard},
		{"VISA Debito", payment.TypeCard},
		{"Mastercard", payment.TypeCard},
		{"Transferencia", payment.TypeTransfer},
		{"Banco Macro", payment.TypeTransfer},
		{"Santander Rio", payment.TypeTransfer},
		{"Cheque", payment.TypeOther},
		{"", payment.TypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, payment.InferType(tt.label), "label %q", tt.label)
	}
}

func TestTypeKeyLabel(t *testing.T) {
	assert.Equal(t, "Efectivo", payment.TypeCash.Label())
	assert.Equal(t, "Tarjeta / POS", payment.TypeCard.Label())
	assert.Equal(t, "Transferencia", payment.TypeTransfer.Label())
	assert.Equal(t, "Otros", payment.TypeOther.Label())
	// Unrecognized keys fall back to the raw key text; untyped to "Otros".
	assert.Equal(t, "CRYPTO", payment.TypeKey("CRYPTO").Label())
	assert.Equal(t, "Otros", payment.TypeKey("").Label())
}

func TestClean_StripsTypeTagsOnly(t *testing.T) {
	assert.Equal(t, "Efectivo: $50.00", payment.Clean("CASH|Efectivo: $50.00"))
	assert.Equal(t,
		"Efectivo: $50.00, Visa: $25.50",
		payment.Clean("CASH|Efectivo: $50.00, CARD|Visa: $25.50"))
	// Legacy clauses are already clean.
	assert.Equal(t, "Efectivo: $100.00", payment.Clean("Efectivo: $100.00"))
	assert.Equal(t, "Transferencia", payment.Clean("TRANSFER|Transferencia"))
	assert.Equal(t, "", payment.Clean(""))
}
