package scoring

import (
	"errors"
	"math"
	"testing"
)

func singleCategoryTemplate() Template {
	return Template{
		Categories: []Category{
			{ID: 1, Nombre: "Sistema Mamario", Ponderacion: 100},
		},
		Characteristics: []Characteristic{
			{ID: 1, CategoriaID: 1, Nombre: "Inserción anterior", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 2, CategoriaID: 1, Nombre: "Longitud de pezón", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
		},
	}
}

func weightedTemplate() Template {
	return Template{
		Categories: []Category{
			{ID: 1, Nombre: "Sistema Mamario", Ponderacion: 40},
			{ID: 2, Nombre: "Fuerza Lechera", Ponderacion: 60},
		},
		Characteristics: []Characteristic{
			{ID: 1, CategoriaID: 1, PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 2, CategoriaID: 1, PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 3, CategoriaID: 2, PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
		},
	}
}

func TestComputeFinalScore_SingleCategory(t *testing.T) {
	tpl := singleCategoryTemplate()

	got := ComputeFinalScore(tpl, Entries{1: 9, 2: 5})
	if got != 14.00 {
		t.Fatalf("expected 14.00, got %v", got)
	}
}

func TestComputeFinalScore_MissingEntryCountsAsZero(t *testing.T) {
	tpl := singleCategoryTemplate()

	got := ComputeFinalScore(tpl, Entries{1: 7})
	if got != 7.00 {
		t.Fatalf("expected 7.00, got %v", got)
	}
}

func TestComputeFinalScore_EmptyEntries(t *testing.T) {
	if got := ComputeFinalScore(weightedTemplate(), Entries{}); got != 0 {
		t.Fatalf("expected 0.00 for empty entries, got %v", got)
	}
	if got := ComputeFinalScore(weightedTemplate(), nil); got != 0 {
		t.Fatalf("expected 0.00 for nil entries, got %v", got)
	}
}

func TestComputeFinalScore_Deterministic(t *testing.T) {
	tpl := weightedTemplate()
	entries := Entries{1: 8.5, 2: 4.2, 3: 7.1}

	first := ComputeFinalScore(tpl, entries)
	for i := 0; i < 10; i++ {
		if got := ComputeFinalScore(tpl, entries); got != first {
			t.Fatalf("run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestComputeFinalScore_WeightedContributions(t *testing.T) {
	tpl := weightedTemplate()

	// Valores ideales: (9+5)*0.40 + 9*0.60 = 5.6 + 5.4 = 11.00
	got := ComputeFinalScore(tpl, Entries{1: 9, 2: 5, 3: 9})
	if got != 11.00 {
		t.Fatalf("expected 11.00, got %v", got)
	}
}

func TestComputeFinalScore_RoundsToTwoDecimals(t *testing.T) {
	tpl := Template{
		Categories:      []Category{{ID: 1, Ponderacion: 33}},
		Characteristics: []Characteristic{{ID: 1, CategoriaID: 1}},
	}

	// 7.77 * 0.33 = 2.5641 -> 2.56
	if got := ComputeFinalScore(tpl, Entries{1: 7.77}); got != 2.56 {
		t.Fatalf("expected 2.56, got %v", got)
	}
}

func TestComputeFinalScore_NonFiniteEntryContributesZero(t *testing.T) {
	tpl := singleCategoryTemplate()

	got := ComputeFinalScore(tpl, Entries{1: math.NaN(), 2: 5})
	if got != 5.00 {
		t.Fatalf("expected 5.00, got %v", got)
	}
}

func TestBuildIndex_RejectsOrphanCharacteristic(t *testing.T) {
	tpl := singleCategoryTemplate()
	tpl.Characteristics = append(tpl.Characteristics, Characteristic{ID: 99, CategoriaID: 42})

	_, err := BuildIndex(tpl)
	if !errors.Is(err, ErrOrphanCharacteristic) {
		t.Fatalf("expected ErrOrphanCharacteristic, got %v", err)
	}

	// El cálculo sigue siendo total: la huérfana simplemente no aporta.
	got := ComputeFinalScore(tpl, Entries{1: 9, 2: 5, 99: 100})
	if got != 14.00 {
		t.Fatalf("expected 14.00 ignoring orphan, got %v", got)
	}
}

func TestNormalizedScore_IdealEntriesGive100(t *testing.T) {
	tpl := weightedTemplate()

	got := NormalizedScore(tpl, Entries{1: 9, 2: 5, 3: 9})
	if got != 100.00 {
		t.Fatalf("expected 100.00, got %v", got)
	}
}

func TestNormalizedScore_PartialEntries(t *testing.T) {
	tpl := singleCategoryTemplate()

	// (9/9)*100 / 100 * 100 = 100 sobre lo calificado
	got := NormalizedScore(tpl, Entries{1: 9})
	if got != 100.00 {
		t.Fatalf("expected 100.00, got %v", got)
	}

	// (4.5/9)*100 / 100 * 100 = 50
	got = NormalizedScore(tpl, Entries{1: 4.5})
	if got != 50.00 {
		t.Fatalf("expected 50.00, got %v", got)
	}
}

func TestNormalizedScore_EmptyEntries(t *testing.T) {
	if got := NormalizedScore(weightedTemplate(), nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestValidateEntry(t *testing.T) {
	ch := Characteristic{ID: 1, RangoAceptadoMin: 4, RangoAceptadoMax: 6}

	cases := []struct {
		raw        string
		wantErr    bool
		wantValue  float64
		outOfRange bool
	}{
		{raw: "5", wantValue: 5},
		{raw: " 4.5 ", wantValue: 4.5},
		{raw: "7", wantValue: 7, outOfRange: true},
		{raw: "3.9", wantValue: 3.9, outOfRange: true},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "+Inf", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ValidateEntry(ch, tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("raw %q: expected ErrInvalidNumber, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("raw %q: unexpected error %v", tc.raw, err)
		}
		if got.Value != tc.wantValue || got.OutOfRange != tc.outOfRange {
			t.Fatalf("raw %q: got %+v", tc.raw, got)
		}
	}
}

func TestCompleteness(t *testing.T) {
	tpl := weightedTemplate()

	missing := Completeness(tpl, Entries{1: 9})
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing, got %d", len(missing))
	}
	if missing[0].ID != 2 || missing[1].ID != 3 {
		t.Fatalf("unexpected missing set: %+v", missing)
	}

	if missing := Completeness(tpl, Entries{1: 1, 2: 2, 3: 3}); missing != nil {
		t.Fatalf("expected complete, got %+v", missing)
	}
}

func TestWeightsSumTo100(t *testing.T) {
	if !WeightsSumTo100(weightedTemplate()) {
		t.Fatal("expected weights to sum 100")
	}

	bad := weightedTemplate()
	bad.Categories[0].Ponderacion = 50
	if WeightsSumTo100(bad) {
		t.Fatal("expected weights check to fail")
	}
}

func TestTemplateItems_FollowsTemplateOrder(t *testing.T) {
	tpl := weightedTemplate()

	items := tpl.Items(Entries{3: 7, 1: 9})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].CaracteristicaID != 1 || items[1].CaracteristicaID != 3 {
		t.Fatalf("unexpected order: %+v", items)
	}
}
