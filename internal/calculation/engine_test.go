package calculation

import (
	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/jmwill86/reloconomics/internal/refdata"
	"github.com/shopspring/decimal"
)

// testStore builds a small in-memory reference-data store covering every
// engine path: progressive federal brackets, flat and no-tax states, two
// metros with contrasting indices, and RPP entries for their states.
func testStore() *refdata.Store {
	dec := decimal.RequireFromString
	max := func(s string) *decimal.Decimal {
		d := dec(s)
		return &d
	}

	return &refdata.Store{
		Federal: map[domain.FilingStatus]refdata.FilingStatusProfile{
			domain.FilingSingle: {
				StandardDeduction: dec("14600"),
				Brackets: []refdata.TaxBracket{
					{Min: dec("0"), Max: max("11600"), Rate: dec("0.10")},
					{Min: dec("11600"), Max: max("47150"), Rate: dec("0.12")},
					{Min: dec("47150"), Max: max("100525"), Rate: dec("0.22")},
					{Min: dec("100525"), Max: max("191950"), Rate: dec("0.24")},
					{Min: dec("191950"), Max: max("243725"), Rate: dec("0.32")},
					{Min: dec("243725"), Max: max("609350"), Rate: dec("0.35")},
					{Min: dec("609350"), Rate: dec("0.37")},
				},
			},
			domain.FilingMarriedJointly: {
				StandardDeduction: dec("29200"),
				Brackets: []refdata.TaxBracket{
					{Min: dec("0"), Max: max("23200"), Rate: dec("0.10")},
					{Min: dec("23200"), Max: max("94300"), Rate: dec("0.12")},
					{Min: dec("94300"), Rate: dec("0.22")},
				},
			},
		},
		StateTaxes: map[string]refdata.StateTaxProfile{
			"TX": {Name: "Texas", Rate: decimal.Zero, Type: "none"},
			"CA": {Name: "California", Rate: dec("0.093"), Type: "graduated_simplified"},
			"CO": {Name: "Colorado", Rate: dec("0.044"), Type: "flat"},
		},
		NationalAverage: map[string]decimal.Decimal{
			"housing":        dec("1800"),
			"food":           dec("600"),
			"transportation": dec("450"),
			"healthcare":     dec("400"),
			"utilities":      dec("300"),
		},
		Metros: map[string]refdata.MetroCostProfile{
			"Austin, TX": {
				State: "TX", OverallIndex: dec("103"),
				Housing: dec("110"), Food: dec("98"), Transportation: dec("102"),
				Healthcare: dec("101"), Utilities: dec("104"),
			},
			"San Francisco, CA": {
				State: "CA", OverallIndex: dec("169"),
				Housing: dec("232"), Food: dec("128"), Transportation: dec("118"),
				Healthcare: dec("124"), Utilities: dec("112"),
			},
			"Testville, TX": {
				State: "TX", OverallIndex: dec("150"),
				Housing: dec("150"), Food: dec("150"), Transportation: dec("150"),
				Healthcare: dec("150"), Utilities: dec("150"),
			},
		},
		RPP: map[string]refdata.StateRPP{
			"TX": {Name: "Texas", RPP: dec("96.5"), Housing: dec("92.3")},
			"CA": {Name: "California", RPP: dec("112.6"), Housing: dec("140.9")},
			"CO": {Name: "Colorado", RPP: dec("102.3"), Housing: dec("109.4")},
		},
	}
}
