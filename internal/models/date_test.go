package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-21")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.July || d.Day() != 21 {
		t.Errorf("ParseDate(2025-07-21) = %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", d.Time)
	}

	if _, err := ParseDate("21/07/2025"); err == nil {
		t.Error("expected error for non-ISO layout")
	}
}

func TestDateJSON(t *testing.T) {
	var p MaintenancePeriod
	payload := `{"entrada":"2025-07-21","saida":"2025-09-16","descricao":"CVA"}`
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := p.Entrada.String(); got != "2025-07-21" {
		t.Errorf("entrada = %q, want 2025-07-21", got)
	}

	out, err := json.Marshal(p.Saida)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2025-09-16"` {
		t.Errorf("marshal = %s", out)
	}

	var missing MaintenancePeriod
	if err := json.Unmarshal([]byte(`{"entrada":"2025-07-21","descricao":"x"}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !missing.Saida.IsZero() {
		t.Error("absent saida should stay zero")
	}
	if missing.Valid() {
		t.Error("period with missing endpoint must not be valid")
	}
}

func TestMaintenancePeriodValid(t *testing.T) {
	entrada := NewDate(2025, time.July, 21)
	saida := NewDate(2025, time.September, 16)

	ok := MaintenancePeriod{Entrada: entrada, Saida: saida}
	if !ok.Valid() {
		t.Error("entrada <= saida should be valid")
	}

	sameDay := MaintenancePeriod{Entrada: entrada, Saida: entrada}
	if !sameDay.Valid() {
		t.Error("single-day period should be valid")
	}

	inverted := MaintenancePeriod{Entrada: saida, Saida: entrada}
	if inverted.Valid() {
		t.Error("entrada > saida must be invalid")
	}
}
