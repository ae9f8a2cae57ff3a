package datagen

import (
	"testing"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int(5, 10) returned %d", v)
		}
	}
}

func TestFakerPrice(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		p := f.Price(10, 1000)
		if p < 10 || p > 1000 {
			t.Errorf("Price(10, 1000) returned %f", p)
		}
	}
}

func TestFakerStringFields(t *testing.T) {
	f := NewFaker()
	fields := map[string]string{
		"ProductName": f.ProductName(),
		"Company":     f.Company(),
		"Name":        f.Name(),
		"Email":       f.Email(),
		"Phone":       f.Phone(),
		"Street":      f.Street(),
		"City":        f.City(),
		"Country":     f.Country(),
	}
	for name, value := range fields {
		if value == "" {
			t.Errorf("%s returned empty string", name)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		seen[v] = true
	}
	for _, item := range items {
		if !seen[item] {
			t.Errorf("Choose never picked %q in 100 draws", item)
		}
	}
}

func TestDefaultSeedConfig(t *testing.T) {
	cfg := DefaultSeedConfig()
	if cfg.Products != 50 || cfg.Stores != 10 || cfg.Suppliers != 8 {
		t.Errorf("Unexpected default sizing: %+v", cfg)
	}
	if cfg.Days != 90 || cfg.SnapshotsPerDay != 5 {
		t.Errorf("Unexpected default span: %+v", cfg)
	}
}
