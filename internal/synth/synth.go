// Package synth deterministically derives a complete fictitious
// customer profile from a 10-digit contract number. The same contract
// number always yields the identical record: the contract is the seed
// of a private PRNG and every field is drawn from it in a fixed order.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidContract is returned when the contract number is not
// exactly 10 ASCII digits. No synthesis is attempted in that case.
var ErrInvalidContract = errors.New("contract number must be exactly 10 digits")

// ConsumptionSample is one month of metered water consumption.
type ConsumptionSample struct {
	Month  string `json:"month"`
	Volume int    `json:"volume_m3"`
	Year   int    `json:"year"`
}

// CustomerRecord is a synthesized customer profile. It is built on
// demand, never persisted, and every field is a pure function of the
// contract number plus the synthesis moment.
type CustomerRecord struct {
	ContractNumber     string              `json:"contract_number"`
	FullName           string              `json:"full_name"`
	NationalID         string              `json:"national_id"`
	Address            string              `json:"address"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Stratum            int                 `json:"stratum"`
	CurrentConsumption int                 `json:"current_consumption_m3"`
	AverageConsumption float64             `json:"average_consumption_m3"`
	History            []ConsumptionSample `json:"consumption_history"`
	TariffPerM3        int                 `json:"tariff_per_m3"`
	BilledAmount       int                 `json:"billed_amount"`
	LastReadingDate    string              `json:"last_reading_date"`
	MeterID            string              `json:"meter_id"`
	CustomerType       string              `json:"customer_type"`
	InstallationDate   string              `json:"installation_date"`
	Neighborhood       string              `json:"neighborhood"`
	BillingCycle       int                 `json:"billing_cycle"`
}

const dateLayout = "2006-01-02"

// ValidateContract checks the 10-ASCII-digit input constraint.
func ValidateContract(contract string) error {
	if len(contract) != 10 {
		return ErrInvalidContract
	}
	for _, c := range contract {
		if c < '0' || c > '9' {
			return ErrInvalidContract
		}
	}
	return nil
}

// Synthesize builds the customer record for the given contract number.
// The relative-date fields (last reading, installation) are computed
// against now; everything else depends only on the contract number.
//
// The draw sequence below is order-dependent: the PRNG is stateful, so
// inserting, removing, or reordering a draw changes every value that
// follows it.
func Synthesize(contract string, now time.Time) (*CustomerRecord, error) {
	if err := ValidateContract(contract); err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(contract, 10, 64)
	if err != nil {
		return nil, ErrInvalidContract
	}
	rng := rand.New(rand.NewSource(seed))

	firstName := choice(rng, firstNames)
	surname1 := choice(rng, surnames)
	surname2 := choice(rng, surnames)

	base := randRange(rng, 15, 35)
	history := make([]ConsumptionSample, 0, len(months))
	total := 0
	for _, month := range months {
		volume := base + randRange(rng, -3, 3)
		if volume < 10 {
			volume = 10
		}
		history = append(history, ConsumptionSample{Month: month, Volume: volume, Year: historyYear})
		total += volume
	}
	average := math.Round(float64(total)/float64(len(history))*10) / 10
	current := history[len(history)-1].Volume

	stratum := randRange(rng, 1, 6)
	tariff := tariffByStratum[stratum]

	rec := &CustomerRecord{
		ContractNumber:     contract,
		FullName:           firstName + " " + surname1 + " " + surname2,
		Email:              emailFor(firstName, surname1),
		Stratum:            stratum,
		CurrentConsumption: current,
		AverageConsumption: average,
		History:            history,
		TariffPerM3:        tariff,
		BilledAmount:       roundToHundred(current * tariff),
	}

	rec.NationalID = strconv.Itoa(randRange(rng, 80000000, 99999999))
	rec.Address = fmt.Sprintf("Calle %d #%d-%d, %s",
		randRange(rng, 1, 150), randRange(rng, 1, 99), randRange(rng, 1, 99), choice(rng, neighborhoods))
	rec.Phone = fmt.Sprintf("3%d%d", randRange(rng, 10, 50), randRange(rng, 1000000, 9999999))
	rec.LastReadingDate = now.AddDate(0, 0, -randRange(rng, 1, 15)).Format(dateLayout)
	rec.MeterID = fmt.Sprintf("MED-%d", randRange(rng, 10000, 99999))
	rec.CustomerType = choice(rng, customerTypes)
	rec.InstallationDate = now.AddDate(0, 0, -randRange(rng, 365, 3650)).Format(dateLayout)
	rec.Neighborhood = choice(rng, neighborhoods)
	rec.BillingCycle = randRange(rng, 1, 6)

	return rec, nil
}

// randRange draws an int uniformly from [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func choice(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

var accentReplacer = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

// emailFor builds the customer email from the lowercased first name
// (spaces removed) and first surname, with the five Spanish accented
// vowels mapped to ASCII.
func emailFor(firstName, surname string) string {
	local := accentReplacer.Replace(strings.ReplaceAll(strings.ToLower(firstName), " ", ""))
	sur := accentReplacer.Replace(strings.ToLower(surname))
	return local + "." + sur + "@" + mailDomain
}

// roundToHundred rounds to the nearest multiple of 100, ties to even.
func roundToHundred(v int) int {
	q, r := v/100, v%100
	switch {
	case r > 50:
		q++
	case r == 50:
		if q%2 != 0 {
			q++
		}
	}
	return q * 100
}
