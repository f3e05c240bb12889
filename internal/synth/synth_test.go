package synth

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 12, 9, 14, 35, 22, 0, time.UTC)

func TestSynthesizeDeterministic(t *testing.T) {
	a, err := Synthesize("1234567890", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	b, err := Synthesize("1234567890", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("records differ for the same contract:\n%+v\n%+v", a, b)
	}
}

func TestSynthesizeRejectsBadContracts(t *testing.T) {
	bad := []string{
		"",
		"123456789",    // 9 digits
		"12345678901",  // 11 digits
		"12345678a0",   // non-digit
		"1234 67890",   // space
		"-123456789",   // sign
		"12345678.0",   // punctuation
	}
	for _, contract := range bad {
		if _, err := Synthesize(contract, testNow); err != ErrInvalidContract {
			t.Errorf("contract %q: expected ErrInvalidContract, got %v", contract, err)
		}
	}
}

func TestHistoryShape(t *testing.T) {
	rec, err := Synthesize("0000000042", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(rec.History) != 6 {
		t.Fatalf("expected 6 history samples, got %d", len(rec.History))
	}
	wantMonths := []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio"}
	for i, s := range rec.History {
		if s.Month != wantMonths[i] {
			t.Errorf("sample %d: month %q, want %q", i, s.Month, wantMonths[i])
		}
		if s.Year != 2024 {
			t.Errorf("sample %d: year %d, want 2024", i, s.Year)
		}
		if s.Volume < 10 {
			t.Errorf("sample %d: volume %d below floor of 10", i, s.Volume)
		}
	}
	if rec.CurrentConsumption != rec.History[5].Volume {
		t.Errorf("current consumption %d does not match last sample %d",
			rec.CurrentConsumption, rec.History[5].Volume)
	}
}

func TestAverageMatchesHistory(t *testing.T) {
	for _, contract := range []string{"1234567890", "9999999999", "0000000001"} {
		rec, err := Synthesize(contract, testNow)
		if err != nil {
			t.Fatalf("Synthesize(%q) failed: %v", contract, err)
		}
		total := 0
		for _, s := range rec.History {
			total += s.Volume
		}
		want := math.Round(float64(total)/6.0*10) / 10
		if rec.AverageConsumption != want {
			t.Errorf("contract %s: average %v, want %v", contract, rec.AverageConsumption, want)
		}
	}
}

func TestBilledAmount(t *testing.T) {
	for _, contract := range []string{"1234567890", "5555555555", "1000000000"} {
		rec, err := Synthesize(contract, testNow)
		if err != nil {
			t.Fatalf("Synthesize(%q) failed: %v", contract, err)
		}
		if rec.BilledAmount%100 != 0 {
			t.Errorf("contract %s: billed amount %d is not a multiple of 100", contract, rec.BilledAmount)
		}
		if want := roundToHundred(rec.CurrentConsumption * rec.TariffPerM3); rec.BilledAmount != want {
			t.Errorf("contract %s: billed amount %d, want %d", contract, rec.BilledAmount, want)
		}
		if want := tariffByStratum[rec.Stratum]; rec.TariffPerM3 != want {
			t.Errorf("contract %s: tariff %d does not match stratum %d (want %d)",
				contract, rec.TariffPerM3, rec.Stratum, want)
		}
	}
}

func TestRoundToHundred(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{49, 0},
		{51, 100},
		{100, 100},
		{1249, 1200},
		{1251, 1300},
		{1250, 1200}, // tie, 12 is even
		{1350, 1400}, // tie, 13 is odd
		{57500, 57500},
	}
	for _, c := range cases {
		if got := roundToHundred(c.in); got != c.want {
			t.Errorf("roundToHundred(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEmailStripsAccents(t *testing.T) {
	got := emailFor("Ana María", "González")
	want := "anamaria.gonzalez@gmail.com"
	if got != want {
		t.Errorf("emailFor = %q, want %q", got, want)
	}

	rec, err := Synthesize("1234567890", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	for _, r := range rec.Email {
		if r > 127 {
			t.Errorf("email %q contains non-ASCII rune %q", rec.Email, r)
		}
	}
	if !strings.HasSuffix(rec.Email, "@gmail.com") || !strings.Contains(rec.Email, ".") {
		t.Errorf("email %q does not match name.surname@domain shape", rec.Email)
	}
}

func TestFieldShapes(t *testing.T) {
	rec, err := Synthesize("8765432109", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if rec.Stratum < 1 || rec.Stratum > 6 {
		t.Errorf("stratum %d out of [1,6]", rec.Stratum)
	}
	if rec.BillingCycle < 1 || rec.BillingCycle > 6 {
		t.Errorf("billing cycle %d out of [1,6]", rec.BillingCycle)
	}
	if len(rec.Phone) != 10 || rec.Phone[0] != '3' {
		t.Errorf("phone %q is not a 10-digit mobile number", rec.Phone)
	}
	if !strings.HasPrefix(rec.MeterID, "MED-") {
		t.Errorf("meter id %q missing MED- prefix", rec.MeterID)
	}
	if rec.CustomerType != "Residencial" && rec.CustomerType != "Comercial" {
		t.Errorf("unexpected customer type %q", rec.CustomerType)
	}
	if _, err := time.Parse("2006-01-02", rec.LastReadingDate); err != nil {
		t.Errorf("last reading date %q: %v", rec.LastReadingDate, err)
	}
	if _, err := time.Parse("2006-01-02", rec.InstallationDate); err != nil {
		t.Errorf("installation date %q: %v", rec.InstallationDate, err)
	}
}
