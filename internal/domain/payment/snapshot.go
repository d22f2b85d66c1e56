package payment

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// TypeKey is the coarse payment category a snapshot clause is classified into.
type TypeKey string

const (
	TypeCash     TypeKey = "CASH"
	TypeCard     TypeKey = "CARD"
	TypeTransfer TypeKey = "TRANSFER"
	TypeOther    TypeKey = "OTHER"
)

// typeLabels is the fixed display-label enumeration. It is never mutated.
var typeLabels = map[TypeKey]string{
	TypeCash:     "Efectivo",
	TypeCard:     "Tarjeta / POS",
	TypeTransfer: "Transferencia",
	TypeOther:    "Otros",
}

// Label returns the display label for the type key. Unrecognized keys fall
// back to the raw key text; an empty key maps to the "Otros" bucket.
func (k TypeKey) Label() string {
	if label, ok := typeLabels[k]; ok {
		return label
	}
	if k == "" {
		return typeLabels[TypeOther]
	}
	return string(k)
}

// Component is the decoded form of one clause of a payment snapshot.
type Component struct {
	Type   TypeKey `json:"type"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

const clauseSep = ", "

// Decode parses a payment snapshot into its components.
//
// The snapshot is a ", "-separated list of clauses of the form "Label: Amount",
// where Label is either "TYPE|MethodName" or a bare legacy method name, and
// Amount may carry a "$" prefix and thousand separators. Decode never fails:
// unparseable clauses are skipped and an empty snapshot yields no components.
//
// A clause that omits its amount is assigned saleTotal only when it is the
// snapshot's sole clause; in mixed snapshots it contributes 0 so the sale
// total is never counted twice.
func Decode(snapshot string, saleTotal float64) []Component {
	snapshot = strings.TrimSpace(snapshot)
	if snapshot == "" {
		return nil
	}

	clauses := strings.Split(snapshot, clauseSep)
	components := make([]Component, 0, len(clauses))

	for _, clause := range clauses {
		rawLabel, rawAmount, hasAmount := strings.Cut(clause, ": ")

		var typeKey TypeKey
		var method string
		if left, right, tagged := strings.Cut(rawLabel, "|"); tagged {
			typeKey = TypeKey(strings.TrimSpace(left))
			method = strings.TrimSpace(right)
		} else {
			method = strings.TrimSpace(rawLabel)
			typeKey = InferType(method)
		}
		if method == "" {
			continue
		}

		amount := saleTotal
		if hasAmount {
			parsed, err := parseAmount(rawAmount)
			if err != nil {
				continue
			}
			amount = parsed
		} else if len(clauses) > 1 {
			amount = 0
		}

		components = append(components, Component{
			Type:   typeKey,
			Method: method,
			Amount: amount,
		})
	}

	return components
}

// Clean renders a snapshot for display: the "TYPE|" prefix of each clause is
// dropped while the amount portion is left untouched. It is a pure projection
// and must never feed back into aggregation.
func Clean(snapshot string) string {
	snapshot = strings.TrimSpace(snapshot)
	if snapshot == "" {
		return ""
	}

	clauses := strings.Split(snapshot, clauseSep)
	cleaned := make([]string, 0, len(clauses))

	for _, clause := range clauses {
		rawLabel, rawAmount, hasAmount := strings.Cut(clause, ": ")
		if _, right, tagged := strings.Cut(rawLabel, "|"); tagged {
			rawLabel = strings.TrimSpace(right)
		}
		if hasAmount {
			cleaned = append(cleaned, rawLabel+": "+rawAmount)
		} else {
			cleaned = append(cleaned, rawLabel)
		}
	}

	return strings.Join(cleaned, clauseSep)
}

// transferHints match the bank names that show up in legacy snapshots
// alongside the generic "transfer"/"banco" markers.
var transferHints = []string{"transfer", "banco", "santander", "galicia", "macro", "bbva", "brubank", "uala"}

// InferType classifies an untagged legacy method label by substring match.
func InferType(label string) TypeKey {
	lower := strings.ToLower(label)

	switch {
	case strings.Contains(lower, "efectivo"), strings.Contains(lower, "caja"):
		return TypeCash
	case strings.Contains(lower, "tarjeta"), strings.Contains(lower, "pos"),
		strings.Contains(lower, "visa"), strings.Contains(lower, "mastercard"):
		return TypeCard
	}
	for _, hint := range transferHints {
		if strings.Contains(lower, hint) {
			return TypeTransfer
		}
	}
	return TypeOther
}

var errNotANumber = errors.New("payment: amount is not a number")

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "$", "")
	raw = strings.ReplaceAll(raw, ",", "")
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, errNotANumber
	}
	return parsed, nil
}
