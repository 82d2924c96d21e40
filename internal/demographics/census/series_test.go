package census

import "testing"

func fptr(v float64) *float64 { return &v }

func rawSeries(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = fptr(values[i])
	}
	return out
}

func TestExtractPercentagesPairedLayout(t *testing.T) {
	// [count, pct] pairs for 3 categories.
	raw := rawSeries(1000, 100, 300, 30, 700, 70)

	series := ExtractPercentages(raw, 3)
	if !series.Available {
		t.Fatalf("expected series to be available")
	}
	want := []float64{100, 30, 70}
	for i, w := range want {
		if series.Values[i] != w {
			t.Fatalf("expected value %d to be %v, got %v", i, w, series.Values[i])
		}
	}
}

func TestExtractPercentagesPairedLayoutTruncatesExtras(t *testing.T) {
	raw := rawSeries(1000, 100, 300, 30, 700, 70, 50, 5)

	series := ExtractPercentages(raw, 3)
	if !series.Available {
		t.Fatalf("expected series to be available")
	}
	if len(series.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(series.Values))
	}
}

func TestExtractPercentagesFlatLayout(t *testing.T) {
	raw := rawSeries(100, 30, 70, 12)

	series := ExtractPercentages(raw, 3)
	if !series.Available {
		t.Fatalf("expected series to be available")
	}
	want := []float64{100, 30, 70}
	for i, w := range want {
		if series.Values[i] != w {
			t.Fatalf("expected value %d to be %v, got %v", i, w, series.Values[i])
		}
	}
}

func TestExtractPercentagesPairedWinsWhenBothFit(t *testing.T) {
	// Length 6 with 3 categories admits both layouts; pairs must win.
	raw := rawSeries(1000, 100, 300, 30, 700, 70)

	series := ExtractPercentages(raw, 3)
	if !series.Available {
		t.Fatalf("expected series to be available")
	}
	if series.Values[1] != 30 {
		t.Fatalf("expected paired interpretation (30), got %v", series.Values[1])
	}
}

func TestExtractPercentagesShortInputIsUnavailable(t *testing.T) {
	if series := ExtractPercentages(rawSeries(10, 20), 3); series.Available {
		t.Fatalf("expected short input to be unavailable")
	}
	if series := ExtractPercentages(nil, 3); series.Available {
		t.Fatalf("expected nil input to be unavailable")
	}
}

func TestExtractPercentagesNilCellAbortsWholeSeries(t *testing.T) {
	raw := rawSeries(1000, 100, 300, 30, 700, 70)
	raw[3] = nil

	if series := ExtractPercentages(raw, 3); series.Available {
		t.Fatalf("expected nil paired cell to abort extraction")
	}

	flat := rawSeries(100, 30, 70)
	flat[1] = nil
	if series := ExtractPercentages(flat, 3); series.Available {
		t.Fatalf("expected nil flat cell to abort extraction")
	}
}

func TestSeriesAt(t *testing.T) {
	series := ExtractPercentages(rawSeries(100, 30, 70), 3)

	if v := series.At(1); v == nil || *v != 30 {
		t.Fatalf("expected At(1)=30, got %v", v)
	}
	if v := series.At(3); v != nil {
		t.Fatalf("expected At(3)=nil, got %v", *v)
	}

	var unavailable Series
	if v := unavailable.At(0); v != nil {
		t.Fatalf("expected nil from unavailable series")
	}
}
